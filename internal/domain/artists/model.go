package artists

// Artist is referenced by artworks; deletion is blocked while any
// artwork still points at it.
type Artist struct {
	ID                      uint   `gorm:"primaryKey" json:"id"`
	Name                    string `gorm:"not null" json:"name"`
	Biography               string `json:"biography,omitempty"`
	Awards                  string `json:"awards,omitempty"`
	ExhibitionsParticipated int    `gorm:"not null;default:0" json:"exhibitions_participated"`
}

package exhibitions

// Exhibition start/end dates are YYYY-MM-DD strings; start must not be
// after end, enforced at creation time.
type Exhibition struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Theme     string `json:"theme,omitempty"`
	StartDate string `gorm:"type:date;not null" json:"start_date"`
	EndDate   string `gorm:"type:date;not null" json:"end_date"`
}

// ExhibitionArtwork joins exhibitions to the artworks shown in them.
// The composite key keeps an artwork from being listed twice.
type ExhibitionArtwork struct {
	ExhibitionID uint `gorm:"primaryKey;autoIncrement:false" json:"exhibition_id"`
	ArtworkID    uint `gorm:"primaryKey;autoIncrement:false" json:"artwork_id"`
}

type VisitorReview struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ExhibitionID uint   `gorm:"not null;index" json:"exhibition_id"`
	Review       string `gorm:"type:text;not null" json:"review"`
	ReviewerName string `gorm:"not null" json:"reviewer_name"`
	ReviewDate   string `gorm:"type:date;not null" json:"review_date"`
}

type PressReview struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ExhibitionID    uint   `gorm:"not null;index" json:"exhibition_id"`
	Review          string `gorm:"type:text;not null" json:"review"`
	PublicationName string `gorm:"not null" json:"publication_name"`
	ReviewDate      string `gorm:"type:date;not null" json:"review_date"`
}

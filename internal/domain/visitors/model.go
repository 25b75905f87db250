package visitors

type Visitor struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"not null;uniqueIndex:idx_visitors_email" json:"email"`
	Phone            string `json:"phone,omitempty"`
	RegistrationDate string `gorm:"type:date;not null" json:"registration_date"`
}

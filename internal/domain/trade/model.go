package trade

// Sale is written once when an artwork is sold; the artwork itself is
// flipped to the Sold status in the same transaction.
type Sale struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ArtworkID uint    `gorm:"not null;index" json:"artwork_id"`
	BuyerName string  `gorm:"not null" json:"buyer_name"`
	SaleDate  string  `gorm:"type:date;not null" json:"sale_date"`
	Price     float64 `json:"price"`
}

// Rental fee is computed from the artwork price at booking time and
// frozen into the row.
type Rental struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ArtworkID  uint    `gorm:"not null;index" json:"artwork_id"`
	RenterName string  `gorm:"not null" json:"renter_name"`
	StartDate  string  `gorm:"type:date;not null" json:"start_date"`
	EndDate    string  `gorm:"type:date;not null" json:"end_date"`
	RentalFee  float64 `json:"rental_fee"`
}

package artworks

import "gallery-app/internal/domain/artists"

type Artwork struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"not null" json:"title"`
	YearCreated     int    `json:"year_created"`
	Technique       string `json:"technique,omitempty"`
	Dimensions      string `json:"dimensions,omitempty"`
	Description     string `json:"description,omitempty"`
	Genre           string `json:"genre,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`
	Status          Status `gorm:"type:text;not null" json:"status"`

	ArtistID uint            `gorm:"not null;index" json:"artist_id"`
	Artist   *artists.Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	Price float64 `json:"price"`
}

// Provenance rows are append-only: one entry per acquisition or
// ownership event, never updated or deleted individually.
type Provenance struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ArtworkID       uint   `gorm:"not null;index" json:"artwork_id"`
	ProvenanceEntry string `gorm:"type:text;not null" json:"provenance_entry"`
	EntryDate       string `gorm:"type:date;not null" json:"entry_date"`
}

// Movement is the append-only relocation log of an artwork.
type Movement struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	ArtworkID         uint   `gorm:"not null;index" json:"artwork_id"`
	FromLocation      string `gorm:"not null" json:"from_location"`
	ToLocation        string `gorm:"not null" json:"to_location"`
	MovementDate      string `gorm:"type:date;not null" json:"movement_date"`
	Purpose           string `json:"purpose,omitempty"`
	ResponsiblePerson string `json:"responsible_person,omitempty"`
}

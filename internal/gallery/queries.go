package gallery

import (
	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/restorations"
	"gallery-app/internal/domain/visitors"
)

// Query operations are plain snapshot reads: full table, id order, no
// side effects. The joined views carry the artwork title so the caller
// never has to resolve ids itself.

func (s *Store) GetArtworks() ([]artworks.Artwork, error) {
	var rows []artworks.Artwork
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list artworks", Err: err}
	}
	return rows, nil
}

func (s *Store) GetArtists() ([]artists.Artist, error) {
	var rows []artists.Artist
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list artists", Err: err}
	}
	return rows, nil
}

func (s *Store) GetExhibitions() ([]exhibitions.Exhibition, error) {
	var rows []exhibitions.Exhibition
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list exhibitions", Err: err}
	}
	return rows, nil
}

func (s *Store) GetVisitors() ([]visitors.Visitor, error) {
	var rows []visitors.Visitor
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list visitors", Err: err}
	}
	return rows, nil
}

func (s *Store) GetMaterials() ([]restorations.Material, error) {
	var rows []restorations.Material
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list materials", Err: err}
	}
	return rows, nil
}

func (s *Store) GetMovements() ([]artworks.Movement, error) {
	var rows []artworks.Movement
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list movements", Err: err}
	}
	return rows, nil
}

func (s *Store) GetVisitorReviews() ([]exhibitions.VisitorReview, error) {
	var rows []exhibitions.VisitorReview
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list visitor reviews", Err: err}
	}
	return rows, nil
}

func (s *Store) GetPressReviews() ([]exhibitions.PressReview, error) {
	var rows []exhibitions.PressReview
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list press reviews", Err: err}
	}
	return rows, nil
}

// GetProvenance returns the ownership history of one artwork, oldest
// entry first.
func (s *Store) GetProvenance(artworkID uint) ([]artworks.Provenance, error) {
	var rows []artworks.Provenance
	if err := s.db.Where("artwork_id = ?", artworkID).Order("id").Find(&rows).Error; err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list provenance", Err: err}
	}
	return rows, nil
}

type DocumentRow struct {
	ID           uint   `json:"id"`
	ArtworkID    uint   `json:"artwork_id"`
	ArtworkTitle string `json:"artwork_title"`
	DocumentType string `json:"document_type"`
	IssueDate    string `json:"issue_date"`
	FilePath     string `json:"file_path"`
	UploadDate   string `json:"upload_date"`
}

func (s *Store) GetDocuments() ([]DocumentRow, error) {
	var rows []DocumentRow
	err := s.db.Table("documents").
		Select(`documents.id, documents.artwork_id, art.title AS artwork_title,
			documents.document_type, documents.issue_date,
			files.file_path, files.upload_date`).
		Joins("JOIN artworks art ON art.id = documents.artwork_id").
		Joins("JOIN document_files files ON files.document_id = documents.id").
		Order("documents.id").
		Scan(&rows).Error
	if err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list documents", Err: err}
	}
	return rows, nil
}

type RestorationRow struct {
	ID              uint    `json:"id"`
	ArtworkID       uint    `json:"artwork_id"`
	ArtworkTitle    string  `json:"artwork_title"`
	RestorerName    string  `json:"restorer_name"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	Cost            float64 `json:"cost"`
	ConditionBefore string  `json:"condition_before"`
	ConditionAfter  string  `json:"condition_after"`
}

func (s *Store) GetRestorations() ([]RestorationRow, error) {
	var rows []RestorationRow
	err := s.db.Table("restorations").
		Select(`restorations.id, restorations.artwork_id, art.title AS artwork_title,
			restorations.restorer_name, restorations.start_date, restorations.end_date,
			restorations.cost, restorations.condition_before, restorations.condition_after`).
		Joins("JOIN artworks art ON art.id = restorations.artwork_id").
		Order("restorations.id").
		Scan(&rows).Error
	if err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list restorations", Err: err}
	}
	return rows, nil
}

type SaleRow struct {
	ID           uint    `json:"id"`
	ArtworkID    uint    `json:"artwork_id"`
	ArtworkTitle string  `json:"artwork_title"`
	BuyerName    string  `json:"buyer_name"`
	SaleDate     string  `json:"sale_date"`
	Price        float64 `json:"price"`
}

func (s *Store) GetSales() ([]SaleRow, error) {
	var rows []SaleRow
	err := s.db.Table("sales").
		Select(`sales.id, sales.artwork_id, art.title AS artwork_title,
			sales.buyer_name, sales.sale_date, sales.price`).
		Joins("JOIN artworks art ON art.id = sales.artwork_id").
		Order("sales.id").
		Scan(&rows).Error
	if err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list sales", Err: err}
	}
	return rows, nil
}

type RentalRow struct {
	ID           uint    `json:"id"`
	ArtworkID    uint    `json:"artwork_id"`
	ArtworkTitle string  `json:"artwork_title"`
	RenterName   string  `json:"renter_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	RentalFee    float64 `json:"rental_fee"`
}

func (s *Store) GetRentals() ([]RentalRow, error) {
	var rows []RentalRow
	err := s.db.Table("rentals").
		Select(`rentals.id, rentals.artwork_id, art.title AS artwork_title,
			rentals.renter_name, rentals.start_date, rentals.end_date, rentals.rental_fee`).
		Joins("JOIN artworks art ON art.id = rentals.artwork_id").
		Order("rentals.id").
		Scan(&rows).Error
	if err != nil {
		return nil, &DatabaseError{Kind: KindStorage, Msg: "list rentals", Err: err}
	}
	return rows, nil
}

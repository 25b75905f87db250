package gallery

import (
	"strings"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/documents"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/restorations"
	"gallery-app/internal/domain/trade"

	"gorm.io/gorm"
)

type AcquireArtworkInput struct {
	Title           string
	YearCreated     int
	Technique       string
	Dimensions      string
	Description     string
	Genre           string
	ArtistID        uint
	ProvenanceEntry string
	Price           float64
}

// AcquireArtwork registers a new artwork in Gallery Storage and writes
// its first provenance entry dated today. Both rows commit together.
func (s *Store) AcquireArtwork(in AcquireArtworkInput) (uint, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, validationf("title is required")
	}
	if in.YearCreated <= 0 {
		return 0, validationf("year_created must be positive, got %d", in.YearCreated)
	}
	if strings.TrimSpace(in.Technique) == "" {
		return 0, validationf("technique is required")
	}
	if strings.TrimSpace(in.Dimensions) == "" {
		return 0, validationf("dimensions is required")
	}
	if strings.TrimSpace(in.ProvenanceEntry) == "" {
		return 0, validationf("provenance_entry is required")
	}
	if in.Price < 0 {
		return 0, validationf("price must not be negative, got %v", in.Price)
	}

	var artworkID uint
	err := s.withTx(func(tx *gorm.DB) error {
		if _, err := artistByID(tx, in.ArtistID); err != nil {
			return err
		}

		artwork := artworks.Artwork{
			Title:           in.Title,
			YearCreated:     in.YearCreated,
			Technique:       in.Technique,
			Dimensions:      in.Dimensions,
			Description:     in.Description,
			Genre:           in.Genre,
			CurrentLocation: "Gallery Storage",
			Status:          artworks.StatusAcquired,
			ArtistID:        in.ArtistID,
			Price:           in.Price,
		}
		if err := tx.Create(&artwork).Error; err != nil {
			return err
		}

		entry := artworks.Provenance{
			ArtworkID:       artwork.ID,
			ProvenanceEntry: in.ProvenanceEntry,
			EntryDate:       today(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		artworkID = artwork.ID
		return nil
	})
	return artworkID, err
}

// UpdateArtworkStatus relabels an artwork through the transition table.
// Returns the number of rows touched (always 1 on success).
func (s *Store) UpdateArtworkStatus(artworkID uint, newStatus string) (int64, error) {
	status, ok := artworks.ParseStatus(newStatus)
	if !ok {
		return 0, validationf("unknown status %q", newStatus)
	}

	var count int64
	err := s.withTx(func(tx *gorm.DB) error {
		artwork, err := artworkByID(tx, artworkID)
		if err != nil {
			return err
		}
		if err := setStatus(tx, artwork, status); err != nil {
			return err
		}
		count = 1
		return nil
	})
	return count, err
}

func (s *Store) UpdateArtworkPrice(artworkID uint, newPrice float64) (int64, error) {
	if newPrice < 0 {
		return 0, validationf("price must not be negative, got %v", newPrice)
	}

	var count int64
	err := s.withTx(func(tx *gorm.DB) error {
		if _, err := artworkByID(tx, artworkID); err != nil {
			return err
		}
		res := tx.Model(&artworks.Artwork{}).
			Where("id = ?", artworkID).
			Update("price", newPrice)
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected
		return nil
	})
	return count, err
}

// RecordMovement appends to the relocation log, dated today.
func (s *Store) RecordMovement(artworkID uint, from, to, purpose, responsible string) error {
	if strings.TrimSpace(from) == "" {
		return validationf("from_location is required")
	}
	if strings.TrimSpace(to) == "" {
		return validationf("to_location is required")
	}
	if strings.TrimSpace(purpose) == "" {
		return validationf("purpose is required")
	}
	if strings.TrimSpace(responsible) == "" {
		return validationf("responsible_person is required")
	}

	return s.withTx(func(tx *gorm.DB) error {
		if _, err := artworkByID(tx, artworkID); err != nil {
			return err
		}
		movement := artworks.Movement{
			ArtworkID:         artworkID,
			FromLocation:      from,
			ToLocation:        to,
			MovementDate:      today(),
			Purpose:           purpose,
			ResponsiblePerson: responsible,
		}
		return tx.Create(&movement).Error
	})
}

// AddDocument files an authenticity document and its file reference in
// one transaction, both dated today.
func (s *Store) AddDocument(artworkID uint, documentType, filePath string) (uint, error) {
	if strings.TrimSpace(documentType) == "" {
		return 0, validationf("document_type is required")
	}
	if strings.TrimSpace(filePath) == "" {
		return 0, validationf("file_path is required")
	}

	var documentID uint
	err := s.withTx(func(tx *gorm.DB) error {
		if _, err := artworkByID(tx, artworkID); err != nil {
			return err
		}

		doc := documents.Document{
			ArtworkID:    artworkID,
			DocumentType: documentType,
			IssueDate:    today(),
		}
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}

		file := documents.DocumentFile{
			DocumentID: doc.ID,
			FilePath:   filePath,
			UploadDate: today(),
		}
		if err := tx.Create(&file).Error; err != nil {
			return err
		}

		documentID = doc.ID
		return nil
	})
	return documentID, err
}

// DeleteArtwork removes an artwork and every dependent record in one
// transaction: provenance, movements, restorations and their material
// usage, sales, rentals, exhibition links, documents and their files.
func (s *Store) DeleteArtwork(artworkID uint) error {
	return s.withTx(func(tx *gorm.DB) error {
		if _, err := artworkByID(tx, artworkID); err != nil {
			return err
		}

		var restorationIDs []uint
		if err := tx.Model(&restorations.Restoration{}).
			Where("artwork_id = ?", artworkID).
			Pluck("id", &restorationIDs).Error; err != nil {
			return err
		}
		if len(restorationIDs) > 0 {
			if err := tx.Where("restoration_id IN ?", restorationIDs).
				Delete(&restorations.RestorationMaterial{}).Error; err != nil {
				return err
			}
		}

		var documentIDs []uint
		if err := tx.Model(&documents.Document{}).
			Where("artwork_id = ?", artworkID).
			Pluck("id", &documentIDs).Error; err != nil {
			return err
		}
		if len(documentIDs) > 0 {
			if err := tx.Where("document_id IN ?", documentIDs).
				Delete(&documents.DocumentFile{}).Error; err != nil {
				return err
			}
		}

		steps := []error{
			tx.Where("artwork_id = ?", artworkID).Delete(&artworks.Provenance{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&artworks.Movement{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&restorations.Restoration{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&trade.Sale{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&trade.Rental{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&exhibitions.ExhibitionArtwork{}).Error,
			tx.Where("artwork_id = ?", artworkID).Delete(&documents.Document{}).Error,
			tx.Delete(&artworks.Artwork{}, artworkID).Error,
		}
		for _, err := range steps {
			if err != nil {
				return err
			}
		}
		return nil
	})
}

package gallery

import (
	"errors"
	"strings"

	"gallery-app/internal/domain/exhibitions"

	"gorm.io/gorm"
)

func (s *Store) CreateExhibition(title, theme, startDate, endDate string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, validationf("title is required")
	}
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return 0, err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return 0, err
	}
	if start.After(end) {
		return 0, validationf("start_date %s must not be after end_date %s", startDate, endDate)
	}

	var exhibitionID uint
	txErr := s.withTx(func(tx *gorm.DB) error {
		e := exhibitions.Exhibition{
			Title:     title,
			Theme:     theme,
			StartDate: startDate,
			EndDate:   endDate,
		}
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		exhibitionID = e.ID
		return nil
	})
	return exhibitionID, txErr
}

// AddArtworkToExhibition links an artwork into an exhibition at most
// once; both ends of the link must exist.
func (s *Store) AddArtworkToExhibition(exhibitionID, artworkID uint) error {
	return s.withTx(func(tx *gorm.DB) error {
		if _, err := exhibitionByID(tx, exhibitionID); err != nil {
			return err
		}
		if _, err := artworkByID(tx, artworkID); err != nil {
			return err
		}

		var existing exhibitions.ExhibitionArtwork
		err := tx.Where("exhibition_id = ? AND artwork_id = ?", exhibitionID, artworkID).
			First(&existing).Error
		if err == nil {
			return conflictf("artwork %d is already in exhibition %d", artworkID, exhibitionID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		link := exhibitions.ExhibitionArtwork{
			ExhibitionID: exhibitionID,
			ArtworkID:    artworkID,
		}
		return tx.Create(&link).Error
	})
}

func (s *Store) AddVisitorReview(exhibitionID uint, review, reviewerName string) (uint, error) {
	if strings.TrimSpace(review) == "" {
		return 0, validationf("review is required")
	}
	if strings.TrimSpace(reviewerName) == "" {
		return 0, validationf("reviewer_name is required")
	}

	var reviewID uint
	err := s.withTx(func(tx *gorm.DB) error {
		if _, err := exhibitionByID(tx, exhibitionID); err != nil {
			return err
		}
		r := exhibitions.VisitorReview{
			ExhibitionID: exhibitionID,
			Review:       review,
			ReviewerName: reviewerName,
			ReviewDate:   today(),
		}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		reviewID = r.ID
		return nil
	})
	return reviewID, err
}

func (s *Store) AddPressReview(exhibitionID uint, review, publicationName string) (uint, error) {
	if strings.TrimSpace(review) == "" {
		return 0, validationf("review is required")
	}
	if strings.TrimSpace(publicationName) == "" {
		return 0, validationf("publication_name is required")
	}

	var reviewID uint
	err := s.withTx(func(tx *gorm.DB) error {
		if _, err := exhibitionByID(tx, exhibitionID); err != nil {
			return err
		}
		r := exhibitions.PressReview{
			ExhibitionID:    exhibitionID,
			Review:          review,
			PublicationName: publicationName,
			ReviewDate:      today(),
		}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		reviewID = r.ID
		return nil
	})
	return reviewID, err
}

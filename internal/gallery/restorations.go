package gallery

import (
	"errors"
	"strings"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/restorations"

	"gorm.io/gorm"
)

// RecordRestorationState opens a restoration dated today. The
// condition_after column holds the in-progress sentinel until
// CompleteRestoration closes the row.
func (s *Store) RecordRestorationState(artworkID uint, restorerName, conditionBefore string, cost float64) (uint, error) {
	if strings.TrimSpace(restorerName) == "" {
		return 0, validationf("restorer_name is required")
	}
	if strings.TrimSpace(conditionBefore) == "" {
		return 0, validationf("condition_before is required")
	}
	if cost < 0 {
		return 0, validationf("cost must not be negative, got %v", cost)
	}

	var restorationID uint
	err := s.withTx(func(tx *gorm.DB) error {
		artwork, err := artworkByID(tx, artworkID)
		if err != nil {
			return err
		}
		if err := setStatus(tx, artwork, artworks.StatusRestored); err != nil {
			return err
		}

		r := restorations.Restoration{
			ArtworkID:       artworkID,
			RestorerName:    restorerName,
			StartDate:       today(),
			Cost:            cost,
			ConditionBefore: conditionBefore,
			ConditionAfter:  restorations.ConditionInProgress,
		}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		restorationID = r.ID
		return nil
	})
	return restorationID, err
}

// CompleteRestoration closes an open restoration: sets end_date to
// today, records the final condition, and returns the artwork to
// Acquired. Completing twice is rejected.
func (s *Store) CompleteRestoration(restorationID uint, conditionAfter string) error {
	if strings.TrimSpace(conditionAfter) == "" {
		return validationf("condition_after is required")
	}

	return s.withTx(func(tx *gorm.DB) error {
		r, err := restorationByID(tx, restorationID)
		if err != nil {
			return err
		}
		if r.EndDate != nil {
			return conflictf("restoration %d is already completed", restorationID)
		}

		artwork, err := artworkByID(tx, r.ArtworkID)
		if err != nil {
			return err
		}
		if err := setStatus(tx, artwork, artworks.StatusAcquired); err != nil {
			return err
		}

		endDate := today()
		return tx.Model(&restorations.Restoration{}).
			Where("id = ?", restorationID).
			Updates(map[string]any{
				"end_date":        endDate,
				"condition_after": conditionAfter,
			}).Error
	})
}

func (s *Store) AddMaterial(name string, unitPrice float64) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationf("name is required")
	}
	if unitPrice < 0 {
		return 0, validationf("unit_price must not be negative, got %v", unitPrice)
	}

	var materialID uint
	err := s.withTx(func(tx *gorm.DB) error {
		m := restorations.Material{Name: name, UnitPrice: unitPrice}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		materialID = m.ID
		return nil
	})
	return materialID, err
}

// AddRestorationMaterial records material consumption. One row per
// (restoration, material) pair; a second attempt for the same pair is a
// duplicate.
func (s *Store) AddRestorationMaterial(restorationID, materialID uint, quantity int) error {
	if quantity <= 0 {
		return validationf("quantity_used must be positive, got %d", quantity)
	}

	return s.withTx(func(tx *gorm.DB) error {
		if _, err := restorationByID(tx, restorationID); err != nil {
			return err
		}
		if _, err := materialByID(tx, materialID); err != nil {
			return err
		}

		var existing restorations.RestorationMaterial
		err := tx.Where("restoration_id = ? AND material_id = ?", restorationID, materialID).
			First(&existing).Error
		if err == nil {
			return conflictf("restoration %d already uses material %d", restorationID, materialID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		usage := restorations.RestorationMaterial{
			RestorationID: restorationID,
			MaterialID:    materialID,
			QuantityUsed:  quantity,
		}
		return tx.Create(&usage).Error
	})
}

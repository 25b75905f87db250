package gallery

import (
	"errors"
	"strings"

	"gallery-app/internal/domain/visitors"

	"gorm.io/gorm"
)

// RegisterVisitor signs a visitor up, dated today. A malformed email is
// a validation failure; a reused one is a duplicate.
func (s *Store) RegisterVisitor(name, email, phone string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationf("name is required")
	}
	if !strings.Contains(email, "@") {
		return 0, validationf("email %q is not a valid address", email)
	}

	var visitorID uint
	err := s.withTx(func(tx *gorm.DB) error {
		var existing visitors.Visitor
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return conflictf("email %q is already registered", email)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		v := visitors.Visitor{
			Name:             name,
			Email:            email,
			Phone:            phone,
			RegistrationDate: today(),
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		visitorID = v.ID
		return nil
	})
	return visitorID, err
}

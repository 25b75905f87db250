package gallery

import (
	"errors"
	"time"

	"gallery-app/config"
	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/restorations"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Store is the single entry point for every domain and query operation.
// The connection and rental policy are injected at construction; no
// package-level state exists.
type Store struct {
	db     *gorm.DB
	rental config.RentalPolicy
}

func NewStore(db *gorm.DB, rental config.RentalPolicy) *Store {
	return &Store{db: db, rental: rental}
}

// withTx runs fn inside one transaction. Domain errors pass through
// untouched; anything else the storage engine reports is wrapped into a
// DatabaseError after the rollback gorm already performed.
func (s *Store) withTx(fn func(tx *gorm.DB) error) error {
	err := s.db.Transaction(fn)
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var de *DatabaseError
	if errors.As(err, &ve) || errors.As(err, &de) {
		return err
	}
	return &DatabaseError{Kind: KindStorage, Msg: "storage failure", Err: err}
}

func today() string {
	return time.Now().Format(dateLayout)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, validationf("%s must be a YYYY-MM-DD date, got %q", field, value)
	}
	return t, nil
}

// Existence checks shared by the operations. Each translates
// gorm.ErrRecordNotFound into the domain's "entity not found" error.

func artworkByID(tx *gorm.DB, id uint) (*artworks.Artwork, error) {
	var a artworks.Artwork
	if err := tx.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("artwork %d not found", id)
		}
		return nil, err
	}
	return &a, nil
}

func artistByID(tx *gorm.DB, id uint) (*artists.Artist, error) {
	var a artists.Artist
	if err := tx.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("artist %d not found", id)
		}
		return nil, err
	}
	return &a, nil
}

func exhibitionByID(tx *gorm.DB, id uint) (*exhibitions.Exhibition, error) {
	var e exhibitions.Exhibition
	if err := tx.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("exhibition %d not found", id)
		}
		return nil, err
	}
	return &e, nil
}

func restorationByID(tx *gorm.DB, id uint) (*restorations.Restoration, error) {
	var r restorations.Restoration
	if err := tx.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("restoration %d not found", id)
		}
		return nil, err
	}
	return &r, nil
}

func materialByID(tx *gorm.DB, id uint) (*restorations.Material, error) {
	var m restorations.Material
	if err := tx.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("material %d not found", id)
		}
		return nil, err
	}
	return &m, nil
}

// setStatus validates the transition table before relabelling. Used by
// every operation that moves an artwork through its lifecycle.
func setStatus(tx *gorm.DB, artwork *artworks.Artwork, next artworks.Status) error {
	if !artworks.CanTransition(artwork.Status, next) {
		return validationf("artwork %d cannot change status from %q to %q",
			artwork.ID, artwork.Status, next)
	}
	return tx.Model(&artworks.Artwork{}).
		Where("id = ?", artwork.ID).
		Update("status", next).Error
}

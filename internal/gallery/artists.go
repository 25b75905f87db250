package gallery

import (
	"strings"

	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/artworks"

	"gorm.io/gorm"
)

func (s *Store) AddArtist(name, biography, awards string, exhibitionsParticipated int) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationf("name is required")
	}
	if exhibitionsParticipated < 0 {
		return 0, validationf("exhibitions_participated must not be negative, got %d", exhibitionsParticipated)
	}

	var artistID uint
	err := s.withTx(func(tx *gorm.DB) error {
		artist := artists.Artist{
			Name:                    name,
			Biography:               biography,
			Awards:                  awards,
			ExhibitionsParticipated: exhibitionsParticipated,
		}
		if err := tx.Create(&artist).Error; err != nil {
			return err
		}
		artistID = artist.ID
		return nil
	})
	return artistID, err
}

// DeleteArtist refuses to remove an artist while any artwork still
// references them.
func (s *Store) DeleteArtist(artistID uint) error {
	return s.withTx(func(tx *gorm.DB) error {
		if _, err := artistByID(tx, artistID); err != nil {
			return err
		}

		var referencing int64
		if err := tx.Model(&artworks.Artwork{}).
			Where("artist_id = ?", artistID).
			Count(&referencing).Error; err != nil {
			return err
		}
		if referencing > 0 {
			return conflictf("artist %d is referenced by %d artwork(s)", artistID, referencing)
		}

		return tx.Delete(&artists.Artist{}, artistID).Error
	})
}

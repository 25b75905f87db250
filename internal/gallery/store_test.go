package gallery

import (
	"path/filepath"
	"testing"
	"time"

	"gallery-app/config"
	"gallery-app/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return newTestStoreWithPolicy(t, config.DefaultRentalPolicy())
}

func newTestStoreWithPolicy(t *testing.T, policy config.RentalPolicy) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewStore(db, policy)
}

func seedArtist(t *testing.T, s *Store) uint {
	t.Helper()
	id, err := s.AddArtist("Test Artist", "Bio", "-", 3)
	require.NoError(t, err)
	return id
}

func seedArtwork(t *testing.T, s *Store, artistID uint) uint {
	t.Helper()
	id, err := s.AcquireArtwork(AcquireArtworkInput{
		Title:           "Sample Artwork",
		YearCreated:     2020,
		Technique:       "Oil",
		Dimensions:      "50x70",
		Description:     "Test",
		Genre:           "Portrait",
		ArtistID:        artistID,
		ProvenanceEntry: "Test provenance",
		Price:           1000,
	})
	require.NoError(t, err)
	return id
}

func seedExhibition(t *testing.T, s *Store) uint {
	t.Helper()
	id, err := s.CreateExhibition("Sample Exhibition", "Modern Art", "2023-01-01", "2023-02-01")
	require.NoError(t, err)
	return id
}

func todayString() string {
	return time.Now().Format("2006-01-02")
}

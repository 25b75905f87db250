package database

import (
	"path/filepath"
	"testing"

	"gallery-app/config"
	"gallery-app/internal/domain/artists"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBURL:    filepath.Join(t.TempDir(), "gallery.db"),
	}
	db, err := Open(cfg)
	require.NoError(t, err)
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle", DBURL: "x"})
	require.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&artists.Artist{Name: "Kept"}).Error)

	// Second run must neither fail nor lose data.
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&artists.Artist{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var artistCount int64
	require.NoError(t, db.Table("artists").Count(&artistCount).Error)
	assert.EqualValues(t, 2, artistCount)

	var artworkCount int64
	require.NoError(t, db.Table("artworks").Count(&artworkCount).Error)
	assert.EqualValues(t, 2, artworkCount)

	var linkCount int64
	require.NoError(t, db.Table("exhibition_artworks").Count(&linkCount).Error)
	assert.EqualValues(t, 2, linkCount)
}

package database

import (
	"fmt"

	"gallery-app/config"
	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/documents"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/restorations"
	"gallery-app/internal/domain/trade"
	"gallery-app/internal/domain/visitors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the store selected by cfg. The default is a local
// sqlite file, matching the single-user deployment; postgres is
// available for shared installs.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBURL)
	case "postgres":
		dialector = postgres.Open(cfg.DBURL)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates any missing tables. Safe to run on every start:
// AutoMigrate only adds what is absent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&artists.Artist{},

		&artworks.Artwork{},
		&artworks.Provenance{},
		&artworks.Movement{},

		&exhibitions.Exhibition{},
		&exhibitions.ExhibitionArtwork{},
		&exhibitions.VisitorReview{},
		&exhibitions.PressReview{},

		&restorations.Restoration{},
		&restorations.Material{},
		&restorations.RestorationMaterial{},

		&trade.Sale{},
		&trade.Rental{},

		&visitors.Visitor{},

		&documents.Document{},
		&documents.DocumentFile{},
	)
}

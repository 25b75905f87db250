package database

import (
	"log"

	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/exhibitions"

	"gorm.io/gorm"
)

// Seed loads the sample collection. It is a no-op when artists already
// exist, so running it repeatedly never duplicates rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&artists.Artist{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed data already present, skipping.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		vanGogh := artists.Artist{
			Name:                    "Vincent van Gogh",
			Biography:               "Dutch post-impressionist painter",
			Awards:                  "-",
			ExhibitionsParticipated: 5,
		}
		if err := tx.Create(&vanGogh).Error; err != nil {
			return err
		}

		picasso := artists.Artist{
			Name:                    "Pablo Picasso",
			Biography:               "Spanish painter, co-founder of Cubism",
			Awards:                  "-",
			ExhibitionsParticipated: 10,
		}
		if err := tx.Create(&picasso).Error; err != nil {
			return err
		}

		starryNight := artworks.Artwork{
			Title:           "The Starry Night",
			YearCreated:     1889,
			Technique:       "Oil on canvas",
			Dimensions:      "73.7 x 92.1 cm",
			Description:     "Night sky over Saint-Remy",
			Genre:           "Post-Impressionism",
			CurrentLocation: "Gallery Storage",
			Status:          artworks.StatusAcquired,
			ArtistID:        vanGogh.ID,
			Price:           1000000,
		}
		if err := tx.Create(&starryNight).Error; err != nil {
			return err
		}

		guernica := artworks.Artwork{
			Title:           "Guernica",
			YearCreated:     1937,
			Technique:       "Oil on canvas",
			Dimensions:      "349 x 776 cm",
			Description:     "Anti-war painting",
			Genre:           "Cubism",
			CurrentLocation: "Gallery Storage",
			Status:          artworks.StatusAcquired,
			ArtistID:        picasso.ID,
			Price:           2000000,
		}
		if err := tx.Create(&guernica).Error; err != nil {
			return err
		}

		exhibition := exhibitions.Exhibition{
			Title:     "Masterpieces of Modernism",
			Theme:     "Modernism",
			StartDate: "2024-05-01",
			EndDate:   "2024-12-31",
		}
		if err := tx.Create(&exhibition).Error; err != nil {
			return err
		}

		for _, artworkID := range []uint{starryNight.ID, guernica.ID} {
			link := exhibitions.ExhibitionArtwork{
				ExhibitionID: exhibition.ID,
				ArtworkID:    artworkID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

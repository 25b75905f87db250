package gallery

import (
	"math"
	"strings"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/trade"

	"gorm.io/gorm"
)

// SellArtwork records the sale dated today and flips the artwork to
// Sold in the same transaction. Selling an artwork that already left
// the collection is rejected by the transition table.
func (s *Store) SellArtwork(artworkID uint, buyerName string, price float64) error {
	if strings.TrimSpace(buyerName) == "" {
		return validationf("buyer_name is required")
	}
	if price <= 0 {
		return validationf("price must be positive, got %v", price)
	}

	return s.withTx(func(tx *gorm.DB) error {
		artwork, err := artworkByID(tx, artworkID)
		if err != nil {
			return err
		}
		if err := setStatus(tx, artwork, artworks.StatusSold); err != nil {
			return err
		}
		sale := trade.Sale{
			ArtworkID: artworkID,
			BuyerName: buyerName,
			SaleDate:  today(),
			Price:     price,
		}
		return tx.Create(&sale).Error
	})
}

// RentArtwork books a rental for [startDate, endDate) and computes the
// fee from the configured policy: rate x price per period, prorated by
// day and rounded to cents.
func (s *Store) RentArtwork(artworkID uint, renterName, startDate, endDate string) error {
	if strings.TrimSpace(renterName) == "" {
		return validationf("renter_name is required")
	}
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return validationf("end_date %s must be after start_date %s", endDate, startDate)
	}

	return s.withTx(func(tx *gorm.DB) error {
		artwork, err := artworkByID(tx, artworkID)
		if err != nil {
			return err
		}

		days := end.Sub(start).Hours() / 24
		fee := artwork.Price * s.rental.Rate * (days / float64(s.rental.PeriodDays))
		fee = math.Round(fee*100) / 100

		if err := setStatus(tx, artwork, artworks.StatusRented); err != nil {
			return err
		}
		rental := trade.Rental{
			ArtworkID:  artworkID,
			RenterName: renterName,
			StartDate:  startDate,
			EndDate:    endDate,
			RentalFee:  fee,
		}
		return tx.Create(&rental).Error
	})
}

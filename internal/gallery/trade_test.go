package gallery

import (
	"testing"

	"gallery-app/config"
	"gallery-app/internal/domain/artworks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellArtwork(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	require.NoError(t, s.SellArtwork(id, "Buyer", 500.0))

	sales, err := s.GetSales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 500.0, sales[0].Price)
	assert.Equal(t, "Sample Artwork", sales[0].ArtworkTitle)
	assert.Equal(t, todayString(), sales[0].SaleDate)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, artworks.StatusSold, rows[0].Status)
}

func TestSellArtworkAlreadySold(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	require.NoError(t, s.SellArtwork(id, "First Buyer", 500))

	err := s.SellArtwork(id, "Second Buyer", 600)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	sales, err := s.GetSales()
	require.NoError(t, err)
	assert.Len(t, sales, 1, "rejected resale must not add a row")
}

func TestSellArtworkValidation(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	var ve *ValidationError
	require.ErrorAs(t, s.SellArtwork(id, "", 500), &ve)
	require.ErrorAs(t, s.SellArtwork(id, "Buyer", 0), &ve)

	err := s.SellArtwork(999, "Buyer", 500)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)

	sales, err := s.GetSales()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRentArtworkFee(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s)) // priced at 1000

	require.NoError(t, s.RentArtwork(id, "Renter", "2023-01-01", "2023-01-31"))

	rentals, err := s.GetRentals()
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	// 1000 * 0.05 * (30 days / 30-day period)
	assert.Equal(t, 50.0, rentals[0].RentalFee)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, artworks.StatusRented, rows[0].Status)
}

func TestRentArtworkFeeProrated(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	// 45 days at 5%/30 days of 1000 = 75.00
	require.NoError(t, s.RentArtwork(id, "Renter", "2023-03-01", "2023-04-15"))

	rentals, err := s.GetRentals()
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, 75.0, rentals[0].RentalFee)
}

func TestRentArtworkPolicyOverride(t *testing.T) {
	s := newTestStoreWithPolicy(t, config.RentalPolicy{Rate: 0.10, PeriodDays: 30})
	id := seedArtwork(t, s, seedArtist(t, s))

	require.NoError(t, s.RentArtwork(id, "Renter", "2023-01-01", "2023-01-31"))

	rentals, err := s.GetRentals()
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, 100.0, rentals[0].RentalFee)
}

func TestRentArtworkValidation(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	var ve *ValidationError
	require.ErrorAs(t, s.RentArtwork(id, "", "2023-01-01", "2023-01-31"), &ve)
	require.ErrorAs(t, s.RentArtwork(id, "R", "2023-01-31", "2023-01-01"), &ve)
	require.ErrorAs(t, s.RentArtwork(id, "R", "2023-01-01", "2023-01-01"), &ve)
	require.ErrorAs(t, s.RentArtwork(id, "R", "01/01/2023", "2023-01-31"), &ve)

	err := s.RentArtwork(999, "R", "2023-01-01", "2023-01-31")
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)

	rentals, err := s.GetRentals()
	require.NoError(t, err)
	assert.Empty(t, rentals)
}

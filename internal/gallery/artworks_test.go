package gallery

import (
	"errors"
	"testing"

	"gallery-app/internal/domain/artworks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireArtwork(t *testing.T) {
	s := newTestStore(t)
	artistID := seedArtist(t, s)

	id, err := s.AcquireArtwork(AcquireArtworkInput{
		Title:           "Test Artwork",
		YearCreated:     2023,
		Technique:       "Oil on canvas",
		Dimensions:      "50x70 cm",
		Description:     "Test description",
		Genre:           "Landscape",
		ArtistID:        artistID,
		ProvenanceEntry: "Private collection",
		Price:           2500,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Test Artwork", rows[0].Title)
	assert.Equal(t, artworks.StatusAcquired, rows[0].Status)
	assert.Equal(t, "Gallery Storage", rows[0].CurrentLocation)

	history, err := s.GetProvenance(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Private collection", history[0].ProvenanceEntry)
	assert.Equal(t, todayString(), history[0].EntryDate)
}

func TestAcquireArtworkValidation(t *testing.T) {
	s := newTestStore(t)
	artistID := seedArtist(t, s)

	base := AcquireArtworkInput{
		Title:           "T",
		YearCreated:     2020,
		Technique:       "Oil",
		Dimensions:      "50x70",
		Genre:           "Portrait",
		ArtistID:        artistID,
		ProvenanceEntry: "P",
		Price:           100,
	}

	cases := []struct {
		name   string
		mutate func(*AcquireArtworkInput)
	}{
		{"empty title", func(in *AcquireArtworkInput) { in.Title = " " }},
		{"zero year", func(in *AcquireArtworkInput) { in.YearCreated = 0 }},
		{"empty technique", func(in *AcquireArtworkInput) { in.Technique = "" }},
		{"empty dimensions", func(in *AcquireArtworkInput) { in.Dimensions = "" }},
		{"empty provenance", func(in *AcquireArtworkInput) { in.ProvenanceEntry = "" }},
		{"negative price", func(in *AcquireArtworkInput) { in.Price = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := s.AcquireArtwork(in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Empty(t, rows, "no artwork row may exist after rejected inputs")
}

func TestAcquireArtworkUnknownArtist(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AcquireArtwork(AcquireArtworkInput{
		Title:           "Orphan",
		YearCreated:     2020,
		Technique:       "Oil",
		Dimensions:      "50x70",
		Genre:           "Portrait",
		ArtistID:        999,
		ProvenanceEntry: "P",
		Price:           100,
	})
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateArtworkStatus(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	count, err := s.UpdateArtworkStatus(id, "On Exhibition")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, artworks.StatusOnExhibition, rows[0].Status)
}

func TestUpdateArtworkStatusRejections(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	_, err := s.UpdateArtworkStatus(id, "Lost")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Rented -> Sold is not in the transition table.
	_, err = s.UpdateArtworkStatus(id, "Rented")
	require.NoError(t, err)
	_, err = s.UpdateArtworkStatus(id, "Sold")
	require.ErrorAs(t, err, &ve)

	_, err = s.UpdateArtworkStatus(999, "Sold")
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestUpdateArtworkPrice(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	count, err := s.UpdateArtworkPrice(id, 4200)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	rows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, 4200.0, rows[0].Price)

	_, err = s.UpdateArtworkPrice(id, -5)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = s.UpdateArtworkPrice(999, 10)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestRecordMovement(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	err := s.RecordMovement(id, "Gallery Storage", "Hall A", "Exhibition setup", "J. Smith")
	require.NoError(t, err)

	rows, err := s.GetMovements()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hall A", rows[0].ToLocation)
	assert.Equal(t, todayString(), rows[0].MovementDate)

	err = s.RecordMovement(id, "", "Hall A", "p", "r")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	err = s.RecordMovement(999, "a", "b", "p", "r")
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestAddDocument(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	docID, err := s.AddDocument(id, "Certificate of Authenticity", "/docs/cert-001.pdf")
	require.NoError(t, err)
	require.NotZero(t, docID)

	rows, err := s.GetDocuments()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sample Artwork", rows[0].ArtworkTitle)
	assert.Equal(t, "/docs/cert-001.pdf", rows[0].FilePath)
	assert.Equal(t, todayString(), rows[0].IssueDate)

	_, err = s.AddDocument(999, "Appraisal", "/docs/x.pdf")
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestDeleteArtworkCascades(t *testing.T) {
	s := newTestStore(t)
	artistID := seedArtist(t, s)
	id := seedArtwork(t, s, artistID)
	exhibitionID := seedExhibition(t, s)

	require.NoError(t, s.RecordMovement(id, "Gallery Storage", "Hall A", "p", "r"))
	_, err := s.AddDocument(id, "Certificate", "/docs/c.pdf")
	require.NoError(t, err)
	require.NoError(t, s.AddArtworkToExhibition(exhibitionID, id))

	restorationID, err := s.RecordRestorationState(id, "R. Estorer", "Cracked varnish", 150)
	require.NoError(t, err)
	materialID, err := s.AddMaterial("Varnish", 12.5)
	require.NoError(t, err)
	require.NoError(t, s.AddRestorationMaterial(restorationID, materialID, 2))
	require.NoError(t, s.CompleteRestoration(restorationID, "Varnish renewed"))

	require.NoError(t, s.SellArtwork(id, "Buyer", 500))

	require.NoError(t, s.DeleteArtwork(id))

	artworksLeft, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Empty(t, artworksLeft)

	movements, err := s.GetMovements()
	require.NoError(t, err)
	assert.Empty(t, movements)

	docs, err := s.GetDocuments()
	require.NoError(t, err)
	assert.Empty(t, docs)

	restorationRows, err := s.GetRestorations()
	require.NoError(t, err)
	assert.Empty(t, restorationRows)

	sales, err := s.GetSales()
	require.NoError(t, err)
	assert.Empty(t, sales)

	history, err := s.GetProvenance(id)
	require.NoError(t, err)
	assert.Empty(t, history)

	// The exhibition itself survives; only the link is gone, so the
	// same pair would be insertable again if the artwork still existed.
	exhibitionRows, err := s.GetExhibitions()
	require.NoError(t, err)
	assert.Len(t, exhibitionRows, 1)

	err = s.DeleteArtwork(id)
	var de *DatabaseError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, KindNotFound, de.Kind)
}

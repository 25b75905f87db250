package gallery

import (
	"testing"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/restorations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRestorationState(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	restorationID, err := s.RecordRestorationState(id, "R. Estorer", "Cracked varnish", 150)
	require.NoError(t, err)
	require.NotZero(t, restorationID)

	rows, err := s.GetRestorations()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, restorations.ConditionInProgress, rows[0].ConditionAfter)
	assert.Equal(t, todayString(), rows[0].StartDate)
	assert.Nil(t, rows[0].EndDate)
	assert.Equal(t, "Sample Artwork", rows[0].ArtworkTitle)

	artworkRows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, artworks.StatusRestored, artworkRows[0].Status)
}

func TestRecordRestorationStateRejections(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	var ve *ValidationError
	_, err := s.RecordRestorationState(id, "", "Cracked", 150)
	require.ErrorAs(t, err, &ve)
	_, err = s.RecordRestorationState(id, "R", "", 150)
	require.ErrorAs(t, err, &ve)
	_, err = s.RecordRestorationState(id, "R", "Cracked", -1)
	require.ErrorAs(t, err, &ve)

	_, err = s.RecordRestorationState(999, "R", "Cracked", 150)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestCompleteRestoration(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	restorationID, err := s.RecordRestorationState(id, "R. Estorer", "Cracked varnish", 150)
	require.NoError(t, err)

	require.NoError(t, s.CompleteRestoration(restorationID, "Varnish renewed"))

	rows, err := s.GetRestorations()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].EndDate)
	assert.Equal(t, todayString(), *rows[0].EndDate)
	assert.Equal(t, "Varnish renewed", rows[0].ConditionAfter)

	artworkRows, err := s.GetArtworks()
	require.NoError(t, err)
	assert.Equal(t, artworks.StatusAcquired, artworkRows[0].Status)

	err = s.CompleteRestoration(restorationID, "Again")
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindConflict, de.Kind)
}

func TestAddRestorationMaterial(t *testing.T) {
	s := newTestStore(t)
	id := seedArtwork(t, s, seedArtist(t, s))

	restorationID, err := s.RecordRestorationState(id, "R. Estorer", "Cracked varnish", 150)
	require.NoError(t, err)
	materialID, err := s.AddMaterial("Varnish", 12.5)
	require.NoError(t, err)

	require.NoError(t, s.AddRestorationMaterial(restorationID, materialID, 2))

	err = s.AddRestorationMaterial(restorationID, materialID, 3)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindConflict, de.Kind)

	var ve *ValidationError
	require.ErrorAs(t, s.AddRestorationMaterial(restorationID, materialID, 0), &ve)

	require.ErrorAs(t, s.AddRestorationMaterial(999, materialID, 1), &de)
	assert.Equal(t, KindNotFound, de.Kind)
	require.ErrorAs(t, s.AddRestorationMaterial(restorationID, 999, 1), &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestAddMaterial(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMaterial("Gold leaf", 340)
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := s.GetMaterials()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gold leaf", rows[0].Name)

	var ve *ValidationError
	_, err = s.AddMaterial("", 1)
	require.ErrorAs(t, err, &ve)
	_, err = s.AddMaterial("Glue", -1)
	require.ErrorAs(t, err, &ve)
}

package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddArtist(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddArtist("Claude Monet", "French impressionist", "-", 12)
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := s.GetArtists()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Claude Monet", rows[0].Name)

	_, err = s.AddArtist("  ", "", "", 0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = s.AddArtist("X", "", "", -1)
	require.ErrorAs(t, err, &ve)
}

func TestDeleteArtistBlockedWhileReferenced(t *testing.T) {
	s := newTestStore(t)
	artistID := seedArtist(t, s)
	artworkID := seedArtwork(t, s, artistID)

	err := s.DeleteArtist(artistID)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindConflict, de.Kind)

	rows, err := s.GetArtists()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "blocked delete must leave the artist in place")

	require.NoError(t, s.DeleteArtwork(artworkID))
	require.NoError(t, s.DeleteArtist(artistID))

	rows, err = s.GetArtists()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDeleteArtistNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteArtist(42)
	var de *DatabaseError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindNotFound, de.Kind)
}

package services

import (
	"testing"

	"github.com/Ramo-11/united-masjid-help/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExternalLinkValidation(t *testing.T) {
	setupTestDB(t)

	_, err := AddExternalLink("", "Food drive", "", "youtube")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = AddExternalLink("https://youtu.be/dQw4w9WgXcQ", "", "", "youtube")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = AddExternalLink("https://example.com", "Food drive", "", "tiktok")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = AddExternalLink("not a url", "Food drive", "", "youtube")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListExternalLinksYoutubeEnrichment(t *testing.T) {
	setupTestDB(t)

	_, err := AddExternalLink("https://www.youtube.com/watch?v=dQw4w9WgXcQ", "Food drive", "", "youtube")
	require.NoError(t, err)

	rows, err := ListExternalLinks()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", rows[0].EmbedURL)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", rows[0].Thumbnail)
}

func TestListExternalLinksShortYoutubeURL(t *testing.T) {
	setupTestDB(t)

	_, err := AddExternalLink("https://youtu.be/dQw4w9WgXcQ", "Food drive", "", "youtube")
	require.NoError(t, err)

	rows, err := ListExternalLinks()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", rows[0].EmbedURL)
}

func TestListExternalLinksFacebookEnrichment(t *testing.T) {
	setupTestDB(t)

	_, err := AddExternalLink("https://www.facebook.com/pantry/posts/123", "Drive recap", "", "facebook")
	require.NoError(t, err)

	rows, err := ListExternalLinks()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].EmbedURL, "facebook.com/plugins/post.php?href=")
	assert.Contains(t, rows[0].EmbedURL, "https%3A%2F%2Fwww.facebook.com%2Fpantry%2Fposts%2F123")
}

func TestDeleteExternalLink(t *testing.T) {
	setupTestDB(t)

	link, err := AddExternalLink("https://youtu.be/dQw4w9WgXcQ", "Food drive", "", "youtube")
	require.NoError(t, err)

	require.NoError(t, DeleteExternalLink(link.ID))
	assert.ErrorIs(t, DeleteExternalLink(link.ID), apperrors.ErrNotFound)
}

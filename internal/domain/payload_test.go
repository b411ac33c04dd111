package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	post := RemotePost{
		ID:            "17895695668004550",
		MediaType:     MediaTypeCarousel,
		MediaURL:      "https://cdn.example.com/one.jpg",
		Caption:       "three shots from the weekend",
		Permalink:     "https://www.instagram.com/p/abc123/",
		Timestamp:     time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC),
		LikeCount:     421,
		CommentsCount: 17,
		Children: []RemoteMedia{
			{ID: "c1", MediaType: MediaTypeImage, MediaURL: "https://cdn.example.com/one.jpg"},
			{ID: "c2", MediaType: MediaTypeVideo, MediaURL: "https://cdn.example.com/two.mp4", ThumbnailURL: "https://cdn.example.com/two.jpg"},
		},
	}

	p, err := EncodePayload(post)
	require.NoError(t, err)

	var got RemotePost
	require.NoError(t, p.Decode(&got))
	assert.Equal(t, post, got)
}

func TestPayloadRoundTripFileIDs(t *testing.T) {
	ids := []string{"gid://store/MediaImage/1", "gid://store/Video/2"}

	p, err := EncodePayload(ids)
	require.NoError(t, err)

	var got []string
	require.NoError(t, p.Decode(&got))
	assert.Equal(t, ids, got)
}

func TestMediaFlattening(t *testing.T) {
	single := RemotePost{ID: "p1", MediaType: MediaTypeImage, MediaURL: "https://cdn.example.com/a.jpg"}
	media := single.Media()
	require.Len(t, media, 1)
	assert.Equal(t, MediaTypeImage, media[0].MediaType)
	assert.Empty(t, media[0].ID)

	carousel := RemotePost{
		ID:        "p2",
		MediaType: MediaTypeCarousel,
		Children: []RemoteMedia{
			{ID: "c1", MediaType: MediaTypeImage},
			{ID: "c2", MediaType: MediaTypeImage},
			{ID: "c3", MediaType: MediaTypeVideo},
		},
	}
	media = carousel.Media()
	require.Len(t, media, 3)
	assert.Equal(t, "c1", media[0].ID)
	assert.Equal(t, "c3", media[2].ID)
}

package domain

import "time"

type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeCarousel MediaType = "CAROUSEL_ALBUM"
)

// RemotePost is one post as returned by the media provider. It is read-only
// for the duration of a sync run; MediaURL is provider-signed and short-lived.
type RemotePost struct {
	ID            string        `json:"id"`
	MediaType     MediaType     `json:"media_type"`
	MediaURL      string        `json:"media_url"`
	ThumbnailURL  string        `json:"thumbnail_url,omitempty"`
	Caption       string        `json:"caption,omitempty"`
	Permalink     string        `json:"permalink,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	LikeCount     int           `json:"like_count"`
	CommentsCount int           `json:"comments_count"`
	Children      []RemoteMedia `json:"children,omitempty"` // carousel children, provider order
}

// RemoteMedia is a single piece of media: a carousel child, or the post's own
// media for single-media posts.
type RemoteMedia struct {
	ID           string    `json:"id"`
	MediaType    MediaType `json:"media_type"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// IsVideo reports whether the media needs the staged-upload path.
func (m RemoteMedia) IsVideo() bool {
	return m.MediaType == MediaTypeVideo
}

// Media flattens a post into the ordered media sequence to upload: the
// children for carousels, otherwise the post's own media. Order is display
// order downstream.
func (p RemotePost) Media() []RemoteMedia {
	if p.MediaType == MediaTypeCarousel && len(p.Children) > 0 {
		return p.Children
	}
	return []RemoteMedia{{
		MediaType:    p.MediaType,
		MediaURL:     p.MediaURL,
		ThumbnailURL: p.ThumbnailURL,
	}}
}

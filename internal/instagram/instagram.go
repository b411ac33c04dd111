// Package instagram is the media-provider boundary: profile identity and the
// recent-media feed, fetched with a per-shop OAuth token.
package instagram

import (
	"context"

	"github.com/mirrorworks/instamirror/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// FetchProfile returns the identity of the account the token belongs to.
	FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error)

	// FetchPosts returns the account's recent posts, newest first, capped at
	// the configured maximum. Carousel children arrive populated.
	FetchPosts(ctx context.Context, accessToken string) ([]domain.RemotePost, error)
}

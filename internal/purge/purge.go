// Package purge removes mirrored objects from a shop store: posts, listings
// and media files. Purges run synchronously; callers may assume the store is
// clean when the call returns.
package purge

import (
	"context"

	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen -source=purge.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// PurgeAccount deletes everything mirrored for one account: its posts,
	// its listing and its media files, matched by the account's key prefixes.
	PurgeAccount(ctx context.Context, st store.Client, username string) (*domain.PurgeReport, error)

	// PurgeAll deletes every mirrored object regardless of account. Posts
	// and listings are app-typed kinds and go wholesale; files are matched
	// by the mirror's alt-tag signature, since the file space is shared with
	// the merchant's own uploads.
	PurgeAll(ctx context.Context, st store.Client) (*domain.PurgeReport, error)
}

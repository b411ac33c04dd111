// Package uploader moves one post's binary media into the shop's file space.
package uploader

import (
	"context"

	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// UploadPostMedia uploads every piece of the post's media to the given
	// shop store, in display order. It never returns an error: each failed
	// piece becomes a recorded failure in the outcome and the rest of the
	// post still uploads.
	UploadPostMedia(ctx context.Context, st store.Client, post domain.RemotePost, username string) domain.UploadOutcome
}

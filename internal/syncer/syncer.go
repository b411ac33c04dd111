// Package syncer orchestrates sync runs: it is the only component that talks
// to the provider, the shop store, the repositories and the purge engine in
// one flow.
package syncer

import (
	"context"

	"github.com/mirrorworks/instamirror/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=syncer.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// SyncAccount runs one full mirror pass for the shop and returns its
	// report. Concurrent calls for the same shop share a single run.
	SyncAccount(ctx context.Context, shop string) (*domain.SyncReport, error)

	// Disconnect removes everything the app mirrored into the shop's store
	// and forgets the connection.
	Disconnect(ctx context.Context, shop string) error

	// ScheduleAutoSync starts the periodic sync of every connected shop, if
	// enabled. It returns after scheduling; jobs run until ctx is done.
	ScheduleAutoSync(ctx context.Context) error
}

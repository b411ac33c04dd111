package syncrun

import (
	"context"
	"errors"

	"github.com/mirrorworks/instamirror/internal/domain"
)

var ErrNotFound = errors.New("sync run not found")

//go:generate go run go.uber.org/mock/mockgen -source=syncrun.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Create persists the audit row for one finished run.
	Create(ctx context.Context, run *domain.SyncRun) error

	// GetLatestByShop returns the shop's most recent run.
	GetLatestByShop(ctx context.Context, shop string) (*domain.SyncRun, error)

	// ListByShop returns the shop's runs, newest first, limited by count.
	ListByShop(ctx context.Context, shop string, count int) ([]*domain.SyncRun, error)
}

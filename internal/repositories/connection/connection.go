package connection

import (
	"context"
	"errors"

	"github.com/mirrorworks/instamirror/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("connection already exists")
	ErrNotFound      = errors.New("connection not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=connection.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// GetByShop returns the connection record for a shop domain.
	GetByShop(ctx context.Context, shop string) (*domain.ConnectionRecord, error)

	// Upsert writes the record for its shop, replacing tokens and expiry on
	// conflict. The install/connect glue calls this.
	Upsert(ctx context.Context, record *domain.ConnectionRecord) error

	// UpdateUsername rewrites the provider username bound to the shop.
	UpdateUsername(ctx context.Context, shop, username string) error

	// Delete removes the shop's record.
	Delete(ctx context.Context, shop string) error

	// ListAll returns every connected shop, for scheduled syncs.
	ListAll(ctx context.Context) ([]*domain.ConnectionRecord, error)
}

package syncerimpl

import (
	"context"
	"errors"

	"github.com/mirrorworks/instamirror/internal/repositories/connection"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
)

// Disconnect tears down a shop's mirror: every mirrored object and file goes
// first, the connection record last. Ordering matters, since the record is
// the only pointer to the store and dropping it before the purge succeeds
// would strand the mirrored content.
func (s *SyncerImpl) Disconnect(ctx context.Context, shop string) error {
	conn, err := s.ConnectionRepo.GetByShop(ctx, shop)
	if err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			return apperrors.ErrShopNotConnected
		}
		return apperrors.Wrap(err, "load connection")
	}

	s.Logger.Info("Disconnecting shop", "shop", shop, "username", conn.Username)

	st := s.StoreFactory.ForShop(conn.Shop, conn.StoreToken)
	purgeReport, err := s.Purge.PurgeAll(ctx, st)
	if err != nil {
		return apperrors.Wrap(err, "purge store")
	}
	if len(purgeReport.Errors) > 0 {
		s.Logger.Warn("Disconnect purge finished with errors",
			"shop", shop,
			"errors", len(purgeReport.Errors),
		)
	}

	if err := s.ConnectionRepo.Delete(ctx, shop); err != nil {
		return apperrors.Wrap(err, "delete connection")
	}

	s.Logger.Info("Shop disconnected",
		"shop", shop,
		"posts_deleted", purgeReport.PostsDeleted,
		"listings_deleted", purgeReport.ListingsDeleted,
		"files_deleted", purgeReport.FilesDeleted,
	)
	return nil
}

package syncerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const shopSyncTimeout = 10 * time.Minute

// ScheduleAutoSync starts the background cron that re-syncs every connected
// shop. Shops are walked sequentially so a slow store rate limit never
// multiplies across tenants.
func (s *SyncerImpl) ScheduleAutoSync(ctx context.Context) error {
	if !s.Config.Sync.Auto {
		s.Logger.Info("Auto sync disabled, shops sync on demand only")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create sync scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.Config.Sync.Cron, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, stopping auto sync job")
				return
			}
			s.syncAllShops(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule auto sync: %w", err)
	}

	scheduler.Start()
	s.Logger.Info("Auto sync scheduled", "cron", s.Config.Sync.Cron)

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping auto sync scheduler")
		if err := scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down sync scheduler", "error", err)
		}
	}()

	return nil
}

func (s *SyncerImpl) syncAllShops(ctx context.Context) {
	conns, err := s.ConnectionRepo.ListAll(ctx)
	if err != nil {
		s.Logger.Error("Failed to list connections for auto sync", "error", err)
		return
	}

	s.Logger.Info("Auto sync pass starting", "shops", len(conns))

	for _, conn := range conns {
		if ctx.Err() != nil {
			return
		}

		shopCtx, cancel := context.WithTimeout(ctx, shopSyncTimeout)
		report, err := s.SyncAccount(shopCtx, conn.Shop)
		cancel()

		if err != nil {
			s.Logger.Error("Auto sync failed for shop", "shop", conn.Shop, "error", err)
			continue
		}
		s.Logger.Info("Auto sync finished for shop",
			"shop", conn.Shop,
			"created", report.PostsCreated,
			"updated", report.PostsUpdated,
			"skipped", report.PostsSkipped,
		)
	}
}

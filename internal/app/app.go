package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/mirrorworks/instamirror/internal/httpapi"
	"github.com/mirrorworks/instamirror/internal/instagram"
	"github.com/mirrorworks/instamirror/internal/instagram/instagramimpl"
	_ "github.com/mirrorworks/instamirror/internal/migrations"
	"github.com/mirrorworks/instamirror/internal/notifier"
	"github.com/mirrorworks/instamirror/internal/notifier/notifierimpl"
	"github.com/mirrorworks/instamirror/internal/purge"
	"github.com/mirrorworks/instamirror/internal/purge/purgeimpl"
	repositories "github.com/mirrorworks/instamirror/internal/repositories/fx"
	"github.com/mirrorworks/instamirror/internal/store"
	"github.com/mirrorworks/instamirror/internal/store/storeimpl"
	"github.com/mirrorworks/instamirror/internal/syncer"
	"github.com/mirrorworks/instamirror/internal/syncer/syncerimpl"
	"github.com/mirrorworks/instamirror/internal/uploader"
	"github.com/mirrorworks/instamirror/internal/uploader/uploaderimpl"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"github.com/mirrorworks/instamirror/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			storeimpl.New,
			fx.As(new(store.Factory)),
		),
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			uploaderimpl.New,
			fx.As(new(uploader.Client)),
		),
		fx.Annotate(
			purgeimpl.New,
			fx.As(new(purge.Client)),
		),
		fx.Annotate(
			notifierimpl.New,
			fx.As(new(notifier.Client)),
		),
		fx.Annotate(
			syncerimpl.New,
			fx.As(new(syncer.Client)),
		),
		httpapi.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(cfg *config.Config, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	dir := filepath.Join(wd, "internal", "migrations")
	log.Info("Applying database migrations", "dir", dir)
	return goose.Up(db, dir)
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, api *httpapi.Server, syncClient syncer.Client) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: api.Router(),
	}

	// The scheduler outlives OnStart, so it gets its own context and the
	// stop hook cancels it before the server drains.
	schedCtx, cancelSched := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info("Starting HTTP server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server failed", "error", err)
				}
			}()

			return syncClient.ScheduleAutoSync(schedCtx)
		},
		OnStop: func(ctx context.Context) error {
			cancelSched()

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

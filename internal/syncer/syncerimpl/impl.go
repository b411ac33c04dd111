package syncerimpl

import (
	"github.com/mirrorworks/instamirror/internal/instagram"
	"github.com/mirrorworks/instamirror/internal/notifier"
	"github.com/mirrorworks/instamirror/internal/purge"
	"github.com/mirrorworks/instamirror/internal/repositories/connection"
	"github.com/mirrorworks/instamirror/internal/repositories/syncrun"
	"github.com/mirrorworks/instamirror/internal/store"
	"github.com/mirrorworks/instamirror/internal/syncer"
	"github.com/mirrorworks/instamirror/internal/uploader"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

type Opts struct {
	fx.In

	Config         *config.Config
	Logger         logger.Logger
	Instagram      instagram.Client
	StoreFactory   store.Factory
	Uploader       uploader.Client
	Purge          purge.Client
	Notifier       notifier.Client
	ConnectionRepo connection.Repository
	SyncRunRepo    syncrun.Repository
}

type SyncerImpl struct {
	Config         *config.Config
	Logger         logger.Logger
	Instagram      instagram.Client
	StoreFactory   store.Factory
	Uploader       uploader.Client
	Purge          purge.Client
	Notifier       notifier.Client
	ConnectionRepo connection.Repository
	SyncRunRepo    syncrun.Repository

	group singleflight.Group
}

func New(opts Opts) *SyncerImpl {
	return &SyncerImpl{
		Config:         opts.Config,
		Logger:         opts.Logger.WithComponent("Syncer"),
		Instagram:      opts.Instagram,
		StoreFactory:   opts.StoreFactory,
		Uploader:       opts.Uploader,
		Purge:          opts.Purge,
		Notifier:       opts.Notifier,
		ConnectionRepo: opts.ConnectionRepo,
		SyncRunRepo:    opts.SyncRunRepo,
	}
}

var _ syncer.Client = (*SyncerImpl)(nil)

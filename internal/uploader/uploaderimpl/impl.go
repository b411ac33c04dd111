package uploaderimpl

import (
	"net/http"
	"time"

	"github.com/mirrorworks/instamirror/internal/ratelimit"
	"github.com/mirrorworks/instamirror/internal/uploader"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
)

type UploaderImpl struct {
	httpClient *http.Client
	logger     logger.Logger
}

type UploaderImplOpts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts UploaderImplOpts) *UploaderImpl {
	transport := ratelimit.NewTransport(nil, opts.Config.Instagram.RequestsPerSecond, opts.Config.Instagram.Burst)

	return &UploaderImpl{
		// Video payloads ride this client, so the timeout is generous.
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   2 * time.Minute,
		},
		logger: opts.Logger.WithComponent("Uploader"),
	}
}

var _ uploader.Client = (*UploaderImpl)(nil)

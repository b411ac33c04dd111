package storeimpl

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mirrorworks/instamirror/internal/ratelimit"
	"github.com/mirrorworks/instamirror/internal/store"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"github.com/mirrorworks/instamirror/pkg/retry"
	"go.uber.org/fx"
)

// Factory hands out shop-scoped admin API clients. All clients share one
// rate-limited HTTP transport so the pacing budget covers the whole process,
// not one shop at a time.
type Factory struct {
	apiVersion string
	httpClient *http.Client
	logger     logger.Logger
	retryCfg   retry.Config
}

type FactoryOpts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts FactoryOpts) *Factory {
	transport := ratelimit.NewTransport(nil, opts.Config.Store.RequestsPerSecond, opts.Config.Store.Burst)

	return &Factory{
		apiVersion: opts.Config.Store.APIVersion,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		logger:   opts.Logger.WithComponent("StoreClient"),
		retryCfg: retry.DefaultConfig(),
	}
}

var _ store.Factory = (*Factory)(nil)

func (f *Factory) ForShop(shop, accessToken string) store.Client {
	return &StoreImpl{
		endpoint:   f.endpointFor(shop),
		token:      accessToken,
		httpClient: f.httpClient,
		logger:     f.logger,
		retryCfg:   f.retryCfg,
	}
}

// endpointFor accepts either a bare shop domain or a full base URL, which is
// what local setups and tests pass.
func (f *Factory) endpointFor(shop string) string {
	base := shop
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", strings.TrimSuffix(base, "/"), f.apiVersion)
}

// StoreImpl talks to one shop's admin GraphQL endpoint.
type StoreImpl struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     logger.Logger
	retryCfg   retry.Config
}

var _ store.Client = (*StoreImpl)(nil)

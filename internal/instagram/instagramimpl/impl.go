package instagramimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mirrorworks/instamirror/internal/instagram"
	"github.com/mirrorworks/instamirror/internal/ratelimit"
	"github.com/mirrorworks/instamirror/pkg/config"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
)

type InstaImpl struct {
	baseURL    string
	maxPosts   int
	httpClient *http.Client
	logger     logger.Logger
}

type InstaImplOpts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts InstaImplOpts) *InstaImpl {
	transport := ratelimit.NewTransport(nil, opts.Config.Instagram.RequestsPerSecond, opts.Config.Instagram.Burst)

	return &InstaImpl{
		baseURL:  strings.TrimSuffix(opts.Config.Instagram.GraphURL, "/"),
		maxPosts: opts.Config.Instagram.MaxPosts,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		logger: opts.Logger.WithComponent("InstagramClient"),
	}
}

var _ instagram.Client = (*InstaImpl)(nil)

func (c *InstaImpl) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeGraphError(resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// decodeGraphError maps the provider's error envelope. An OAuth failure means
// the stored token is dead and the merchant must reconnect; everything else
// is an ordinary call failure.
func decodeGraphError(status int, body []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    int    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		if envelope.Error.Type == "OAuthException" || envelope.Error.Code == 190 {
			return apperrors.Wrap(apperrors.ErrReconnectRequired, envelope.Error.Message)
		}
		return fmt.Errorf("provider error %d (%s): %s", envelope.Error.Code, envelope.Error.Type, envelope.Error.Message)
	}
	return fmt.Errorf("provider returned status %d", status)
}

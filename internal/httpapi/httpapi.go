// Package httpapi exposes the sync engine over a small JSON surface. It is
// glue only: every decision about a run belongs to the syncer, the handlers
// just translate its errors into status codes.
package httpapi

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mirrorworks/instamirror/internal/repositories/syncrun"
	"github.com/mirrorworks/instamirror/internal/syncer"
	"github.com/mirrorworks/instamirror/pkg/config"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultRunCount = 20
	maxRunCount     = 100
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	Syncer      syncer.Client
	SyncRunRepo syncrun.Repository
}

type Server struct {
	apiKey string
	logger logger.Logger
	syncer syncer.Client
	runs   syncrun.Repository
}

func New(opts Opts) *Server {
	return &Server{
		apiKey: opts.Config.App.APIKey,
		logger: opts.Logger.WithComponent("HTTPApi"),
		syncer: opts.Syncer,
		runs:   opts.SyncRunRepo,
	}
}

// Router builds the handler tree. Health stays open; everything else sits
// behind the API key when one is configured.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /sync", s.requireAPIKey(s.handleSync))
	mux.HandleFunc("POST /disconnect", s.requireAPIKey(s.handleDisconnect))
	mux.HandleFunc("GET /runs", s.requireAPIKey(s.handleRuns))
	mux.HandleFunc("GET /status", s.requireAPIKey(s.handleStatus))
	return mux
}

func (s *Server) requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" {
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.apiKey)) != 1 {
				writeJSON(w, http.StatusUnauthorized, errorBody("invalid api key"))
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	shop, ok := shopParam(w, r)
	if !ok {
		return
	}

	report, err := s.syncer.SyncAccount(r.Context(), shop)
	if err != nil {
		s.writeSyncError(w, shop, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	shop, ok := shopParam(w, r)
	if !ok {
		return
	}

	if err := s.syncer.Disconnect(r.Context(), shop); err != nil {
		s.writeSyncError(w, shop, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "disconnected", "shop": shop})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	shop, ok := shopParam(w, r)
	if !ok {
		return
	}

	count := defaultRunCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, errorBody("count must be a positive integer"))
			return
		}
		count = min(parsed, maxRunCount)
	}

	runs, err := s.runs.ListByShop(r.Context(), shop, count)
	if err != nil {
		s.logger.Error("Failed to list sync runs", "shop", shop, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to list runs"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shop": shop, "runs": runs})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	shop, ok := shopParam(w, r)
	if !ok {
		return
	}

	run, err := s.runs.GetLatestByShop(r.Context(), shop)
	if err != nil {
		if errors.Is(err, syncrun.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("no sync runs recorded for shop"))
			return
		}
		s.logger.Error("Failed to load latest sync run", "shop", shop, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to load status"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shop": shop, "latest_run": run})
}

// writeSyncError maps the engine's error classes onto the wire. Auth failures
// carry a reconnect flag so the caller can route the merchant back through the
// connect flow.
func (s *Server) writeSyncError(w http.ResponseWriter, shop string, err error) {
	switch {
	case apperrors.IsShopNotConnected(err):
		writeJSON(w, http.StatusNotFound, errorBody("shop not connected"))
	case apperrors.IsReconnectRequired(err):
		body := errorBody(apperrors.GetMessage(err))
		body["reconnect_required"] = true
		writeJSON(w, http.StatusUnauthorized, body)
	default:
		s.logger.Error("Request failed", "shop", shop, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody(apperrors.GetMessage(err)))
	}
}

func shopParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("missing shop parameter"))
		return "", false
	}
	return shop, true
}

func errorBody(message string) map[string]any {
	return map[string]any{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

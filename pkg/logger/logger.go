package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Logger is the logging surface the rest of the application depends on.
// Arguments follow slog conventions: alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	SentryUrl string
}

type Impl struct {
	slog *slog.Logger
}

var _ Logger = (*Impl)(nil)

// New builds the logging pipeline: a zerolog handler (console in development,
// JSON in production) and, when a DSN is configured, a Sentry handler that
// forwards error records. Both sit behind one slog fan-out.
func New(opts Opts) *Impl {
	var zl zerolog.Logger
	level := slog.LevelDebug
	if opts.Env == "production" {
		zl = zerolog.New(os.Stderr).With().Timestamp().Logger()
		level = slog.LevelInfo
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryUrl != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:           opts.SentryUrl,
			Environment:   opts.Env,
			EnableTracing: false,
		})
		if err != nil {
			zl.Warn().Err(err).Msg("sentry init failed, error reporting disabled")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{slog: slog.New(slogmulti.Fanout(handlers...))}
}

func (l *Impl) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

func (l *Impl) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

func (l *Impl) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

func (l *Impl) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// WithComponent returns a logger with a component field on every record.
func (l *Impl) WithComponent(name string) Logger {
	return &Impl{slog: l.slog.With("component", name)}
}

// Printf satisfies fx's Printer so fx lifecycle events land in the same
// pipeline.
func (l *Impl) Printf(format string, args ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}

// Flush drains pending Sentry events; called on shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}

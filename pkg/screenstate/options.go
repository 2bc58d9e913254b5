package screenstate

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a ViewModel during construction.
type Option func(*viewModelOptions)

type viewModelOptions struct {
	logger       *slog.Logger
	fetchTimeout time.Duration
	buffer       int
}

func defaultOptions() *viewModelOptions {
	return &viewModelOptions{
		logger: newNoopLogger(),
		buffer: 4,
	}
}

// WithLogger supplies an external slog.Logger instance. Nil loggers are
// ignored and the default noop logger is kept.
func WithLogger(l *slog.Logger) Option {
	return func(o *viewModelOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFetchTimeout bounds each fetch. Zero (the default) means no
// timeout beyond the view model lifetime.
func WithFetchTimeout(d time.Duration) Option {
	if d < 0 {
		panic("WithFetchTimeout: duration must be >= 0")
	}
	return func(o *viewModelOptions) { o.fetchTimeout = d }
}

// WithSubscriberBuffer sets the per-observer channel buffer size.
func WithSubscriberBuffer(n int) Option {
	return func(o *viewModelOptions) { o.buffer = n }
}

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }

func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}

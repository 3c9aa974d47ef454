package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/filesession/pkg/clientip"
)

// Option is a functional option for configuring sessions
type Option func(*options)

type options struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
	ip      *clientip.Resolver
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		now:    time.Now,
		ip:     clientip.New(clientip.DefaultHeaders...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithBackend replaces the backend built from the settings.
func WithBackend(b Backend) Option {
	return func(o *options) {
		if b != nil {
			o.backend = b
		}
	}
}

// WithLogger sets the logger used for session diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source used for ids and the start timestamp
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIPResolver sets how the middleware determines the client address
func WithIPResolver(r *clientip.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.ip = r
		}
	}
}

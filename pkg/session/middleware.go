package session

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/filesession/pkg/cookie"
	"github.com/dmitrymomot/filesession/pkg/logger"
)

// Middleware loads or starts a session for every request, exposes it through
// the request context and saves it once the next handler returns.
// Sessions cleared during the request are not saved again. Loading and the
// final save ignore cancellation of the request context.
func Middleware(settings Settings, cookies *cookie.Manager, opts ...Option) func(http.Handler) http.Handler {
	if cookies == nil {
		panic("session: cookie manager is required")
	}
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			// storage outlives a cancelled request so the teardown save still lands
			storeCtx := context.WithoutCancel(ctx)

			h := NewHTTPHandler(w, r, cookies, settings, o.ip)
			s, err := newSession(storeCtx, h, o)
			if err != nil {
				o.logger.ErrorContext(ctx, "could not start session",
					logger.Component("session"),
					logger.Error(err),
				)
				http.Error(w, "Session error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, s)))

			if !s.Cleared() {
				s.Save(storeCtx)
			}
		})
	}
}

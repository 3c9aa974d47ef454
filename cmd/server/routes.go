package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/filesession/pkg/clientip"
	"github.com/dmitrymomot/filesession/pkg/cookie"
	"github.com/dmitrymomot/filesession/pkg/httpserver"
	"github.com/dmitrymomot/filesession/pkg/requestid"
	"github.com/dmitrymomot/filesession/pkg/session"
)

func newRouter(settings session.Settings, cookies *cookie.Manager, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)

	ready := httpserver.HealthCheckHandler(log,
		httpserver.WritableDir(settings.Session.ResolveDirectory(settings.BasePath)),
	)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", ready)

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(settings, cookies, session.WithLogger(log)))

		r.Get("/", visit)
		r.Get("/cart", showCart)
		r.Post("/cart/{total}", setCart)
		r.Post("/logout", logout)
	})

	return r
}

type sessionView struct {
	ID        string `json:"id,omitempty"`
	Visits    int    `json:"visits,omitempty"`
	CartTotal *int   `json:"cart_total,omitempty"`
}

func view(s *session.Session) sessionView {
	v := sessionView{ID: s.ID()}
	v.Visits, _ = s.GetInt("visits")
	if total, ok := s.GetInt("cart_total"); ok {
		v.CartTotal = &total
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func visit(w http.ResponseWriter, r *http.Request) {
	s := session.MustFromContext(r.Context())
	n, _ := s.GetInt("visits")
	s.Set("visits", n+1)
	writeJSON(w, http.StatusOK, view(s))
}

func showCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view(session.MustFromContext(r.Context())))
}

func setCart(w http.ResponseWriter, r *http.Request) {
	total, err := strconv.Atoi(chi.URLParam(r, "total"))
	if err != nil || total < 0 {
		http.Error(w, "invalid cart total", http.StatusBadRequest)
		return
	}
	s := session.MustFromContext(r.Context())
	s.Set("cart_total", total)
	writeJSON(w, http.StatusOK, view(s))
}

func logout(w http.ResponseWriter, r *http.Request) {
	session.MustFromContext(r.Context()).Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

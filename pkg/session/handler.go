package session

import (
	"net/http"

	"github.com/dmitrymomot/filesession/pkg/clientip"
	"github.com/dmitrymomot/filesession/pkg/cookie"
)

// Handler is what a session needs from the request being served.
type Handler interface {
	// GetSecureCookie returns the verified cookie value, if any
	GetSecureCookie(name string) (string, bool)

	// SetSecureCookie issues a tamper-evident cookie valid for days
	SetSecureCookie(name, value string, days int) error

	// ClearCookie removes the cookie from the client
	ClearCookie(name string)

	RemoteIP() string
	UserAgent() string

	// Settings returns the application-wide settings
	Settings() Settings
}

// HTTPHandler implements Handler on top of net/http and a signing cookie manager.
type HTTPHandler struct {
	w        http.ResponseWriter
	r        *http.Request
	cookies  *cookie.Manager
	settings Settings
	ip       *clientip.Resolver
}

// NewHTTPHandler wraps one request/response pair.
// A nil resolver resolves the client address with clientip.DefaultHeaders.
func NewHTTPHandler(w http.ResponseWriter, r *http.Request, cookies *cookie.Manager, settings Settings, ip *clientip.Resolver) *HTTPHandler {
	if ip == nil {
		ip = clientip.New(clientip.DefaultHeaders...)
	}
	return &HTTPHandler{
		w:        w,
		r:        r,
		cookies:  cookies,
		settings: settings,
		ip:       ip,
	}
}

// GetSecureCookie reports a missing, malformed or forged cookie as absent.
func (h *HTTPHandler) GetSecureCookie(name string) (string, bool) {
	value, err := h.cookies.GetSigned(h.r, name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

func (h *HTTPHandler) SetSecureCookie(name, value string, days int) error {
	return h.cookies.SetSigned(h.w, name, value, cookie.WithMaxAgeDays(days))
}

func (h *HTTPHandler) ClearCookie(name string) {
	h.cookies.Delete(h.w, name)
}

// RemoteIP prefers an address already resolved by clientip.Middleware.
func (h *HTTPHandler) RemoteIP() string {
	if ip := clientip.GetIPFromContext(h.r.Context()); ip != "" {
		return ip
	}
	return h.ip.IP(h.r)
}

func (h *HTTPHandler) UserAgent() string {
	return h.r.UserAgent()
}

func (h *HTTPHandler) Settings() Settings {
	return h.settings
}

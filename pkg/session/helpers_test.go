package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrymomot/filesession/pkg/logger"
	"github.com/dmitrymomot/filesession/pkg/session"
)

type cookieCall struct {
	name  string
	value string
	days  int
}

// fakeHandler records cookie operations instead of touching HTTP.
type fakeHandler struct {
	cookies  map[string]string
	sets     []cookieCall
	clears   []string
	ip       string
	ua       string
	settings session.Settings
	setErr   error
}

func newFakeHandler(basePath string, cookie ...string) *fakeHandler {
	cfg := session.Config{
		Type:       "file",
		Directory:  "__base_path__/sessions",
		CookieName: "sid",
		Duration:   30,
	}
	h := &fakeHandler{
		cookies:  make(map[string]string),
		ip:       "203.0.113.9",
		ua:       "Mozilla/5.0 (test)",
		settings: session.Settings{BasePath: basePath, Session: &cfg},
	}
	if len(cookie) > 0 {
		h.cookies["sid"] = cookie[0]
	}
	return h
}

func (h *fakeHandler) GetSecureCookie(name string) (string, bool) {
	v, ok := h.cookies[name]
	return v, ok
}

func (h *fakeHandler) SetSecureCookie(name, value string, days int) error {
	h.sets = append(h.sets, cookieCall{name: name, value: value, days: days})
	if h.setErr != nil {
		return h.setErr
	}
	h.cookies[name] = value
	return nil
}

func (h *fakeHandler) ClearCookie(name string) {
	h.clears = append(h.clears, name)
	delete(h.cookies, name)
}

func (h *fakeHandler) RemoteIP() string           { return h.ip }
func (h *fakeHandler) UserAgent() string          { return h.ua }
func (h *fakeHandler) Settings() session.Settings { return h.settings }

// fixedClock returns a clock that advances one millisecond per call.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	}
}

func quiet() session.Option {
	return session.WithLogger(logger.Discard())
}

func sessionFile(basePath, id string) string {
	return filepath.Join(basePath, "sessions", id)
}

func readFile(t *testing.T, basePath, id string) map[string]any {
	t.Helper()
	values, err := session.NewFileBackend(filepath.Join(basePath, "sessions"), nil).Load(context.Background(), id)
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	return values
}

// failingBackend returns configured errors and counts calls.
type failingBackend struct {
	loadErr   error
	saveErr   error
	deleteErr error

	saves   int
	deletes int
}

var errBoom = errors.New("boom")

func (b *failingBackend) Load(context.Context, string) (map[string]any, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return map[string]any{}, nil
}

func (b *failingBackend) Save(context.Context, string, map[string]any) error {
	b.saves++
	return b.saveErr
}

func (b *failingBackend) Delete(context.Context, string) error {
	b.deletes++
	return b.deleteErr
}

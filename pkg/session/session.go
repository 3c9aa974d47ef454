package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/filesession/pkg/logger"
)

// KeyStarted holds the time the session was created.
const KeyStarted = "started"

// Protected keys address the session's own fields instead of its values.
const (
	KeyID        = "id"
	KeyHandler   = "handler"
	KeyPath      = "path"
	KeyProtected = "protected"
	KeySettings  = "settings"
	KeyValues    = "values"
)

var protectedKeys = []string{KeyID, KeyHandler, KeyPath, KeyProtected, KeySettings, KeyValues}

// ProtectedKeys returns the keys that are never stored among the session values.
func ProtectedKeys() []string {
	return slices.Clone(protectedKeys)
}

// IsProtected reports whether key addresses a session field.
func IsProtected(key string) bool {
	return slices.Contains(protectedKeys, key)
}

// Session is the state of one client, loaded for the duration of one request.
// It is not safe for concurrent use.
type Session struct {
	id       string
	handler  Handler
	path     string
	settings Config
	values   map[string]any

	backend Backend
	log     *slog.Logger
	now     func() time.Time
	cleared bool

	// logCtx carries the construction context's values to log lines of
	// methods that take no context. It is never used for cancellation.
	logCtx context.Context
}

// New looks the session up by its cookie, or starts a new one.
//
// A cookie whose data cannot be loaded yields a fresh session under the same
// id. Storage problems are logged and never returned: the only errors are a
// missing session block in the settings and an unusable backend selection.
func New(ctx context.Context, h Handler, opts ...Option) (*Session, error) {
	return newSession(ctx, h, newOptions(opts))
}

func newSession(ctx context.Context, h Handler, o options) (*Session, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	app := h.Settings()
	if app.Session == nil {
		return nil, ErrMissingConfig
	}

	s := &Session{
		handler:  h,
		settings: *app.Session,
		values:   make(map[string]any),
		backend:  o.backend,
		log:      o.logger.With(logger.Component("session")),
		now:      o.now,
		logCtx:   context.WithoutCancel(ctx),
	}
	s.log.DebugContext(ctx, "session object initialized")

	if kind, err := ParseKind(s.settings.Type); err == nil && kind == KindFile {
		s.path = s.settings.ResolveDirectory(app.BasePath)
	}

	if s.backend == nil {
		b, _, err := NewBackend(s.settings, app.BasePath)
		if err != nil {
			return nil, err
		}
		s.backend = b
	}

	id, ok := h.GetSecureCookie(s.settings.CookieName)
	switch {
	case ok && ValidID(id):
		s.id = id
		s.load(ctx)
	case ok:
		s.log.WarnContext(ctx, "ignoring malformed session id from cookie")
		s.id = s.mint(ctx)
	default:
		s.id = s.mint(ctx)
	}

	return s, nil
}

// load replaces the values with the stored ones, or reinitializes the
// session under the current id when nothing usable is stored.
func (s *Session) load(ctx context.Context) {
	s.log.DebugContext(ctx, "loading session data", logger.SessionID(s.id), logger.Path(s.path))

	values, err := s.backend.Load(ctx, s.id)
	if err == nil {
		if values == nil {
			values = make(map[string]any)
		}
		s.values = values
		return
	}

	// undecodable data is overwritten below; a codec change is the usual cause
	level := slog.LevelInfo
	if errors.Is(err, ErrDecodeFailed) {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "missing session data, creating new with same id",
		logger.SessionID(s.id),
		logger.Error(err),
	)

	s.values = map[string]any{KeyStarted: s.now()}
	s.Save(ctx)
}

// mint issues a new id and its cookie, then persists the initial values.
func (s *Session) mint(ctx context.Context) string {
	now := s.now()
	id := GenerateID(s.handler.RemoteIP(), s.handler.UserAgent(), now)

	if err := s.handler.SetSecureCookie(s.settings.CookieName, id, s.settings.Duration); err != nil {
		s.log.ErrorContext(ctx, "could not set session cookie", logger.SessionID(id), logger.Error(err))
	}

	s.id = id
	s.values = map[string]any{KeyStarted: now}
	s.Save(ctx)

	return id
}

// Save writes the values to the backend. Failures are logged, not returned.
func (s *Session) Save(ctx context.Context) {
	if s.id == "" {
		s.log.WarnContext(ctx, "not saving session without id")
		return
	}

	s.log.DebugContext(ctx, "writing session data", logger.SessionID(s.id), logger.Path(s.path))
	if err := s.backend.Save(ctx, s.id, s.values); err != nil {
		s.log.ErrorContext(ctx, "could not write session data",
			logger.SessionID(s.id),
			logger.Path(s.path),
			logger.Error(err),
		)
	}
}

// Clear removes the cookie and the stored data, and drops the id.
// The values stay readable in memory until the session is discarded.
func (s *Session) Clear(ctx context.Context) {
	if s.handler != nil {
		s.handler.ClearCookie(s.settings.CookieName)
	}

	if s.id != "" {
		s.log.DebugContext(ctx, "removing cleared session data", logger.SessionID(s.id), logger.Path(s.path))
		if err := s.backend.Delete(ctx, s.id); err != nil {
			level := slog.LevelError
			if errors.Is(err, ErrNotFound) {
				level = slog.LevelWarn
			}
			s.log.Log(ctx, level, "could not remove session data", logger.SessionID(s.id), logger.Error(err))
		}
	}

	s.Delete(KeyID)
	s.cleared = true
}

// Get returns the value stored under key, or nil.
func (s *Session) Get(key string) any {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether it was present.
// Protected keys return the session's own fields.
func (s *Session) Lookup(key string) (any, bool) {
	if IsProtected(key) {
		return s.field(key)
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Set stores value under key. Protected keys assign the session's own field;
// a value of the wrong type for that field is ignored.
func (s *Session) Set(key string, value any) {
	if IsProtected(key) {
		s.setField(key, value)
		return
	}
	s.log.DebugContext(s.logCtx, "adding key to the session", logger.Key(key))
	s.values[key] = value
}

// Delete removes key. Missing keys are ignored.
// Protected keys reset the session's own field.
func (s *Session) Delete(key string) {
	if IsProtected(key) {
		s.deleteField(key)
		return
	}
	s.log.DebugContext(s.logCtx, "removing key from the session", logger.Key(key))
	delete(s.values, key)
}

func (s *Session) field(key string) (any, bool) {
	switch key {
	case KeyID:
		return s.id, s.id != ""
	case KeyHandler:
		return s.handler, s.handler != nil
	case KeyPath:
		return s.path, s.path != ""
	case KeyProtected:
		return ProtectedKeys(), true
	case KeySettings:
		return s.settings, true
	case KeyValues:
		return s.Values(), true
	}
	return nil, false
}

func (s *Session) setField(key string, value any) {
	ok := true
	switch key {
	case KeyID:
		var id string
		if id, ok = value.(string); ok {
			s.id = id
		}
	case KeyHandler:
		var h Handler
		if h, ok = value.(Handler); ok {
			s.handler = h
		}
	case KeyPath:
		var p string
		if p, ok = value.(string); ok {
			s.path = p
		}
	case KeySettings:
		var cfg Config
		if cfg, ok = value.(Config); ok {
			s.settings = cfg
		}
	case KeyValues:
		var values map[string]any
		if values, ok = value.(map[string]any); ok {
			s.values = maps.Clone(ensureMap(values))
		}
	default:
		ok = false
	}
	if !ok {
		s.log.WarnContext(s.logCtx, "ignoring assignment to protected session field", logger.Key(key))
	}
}

func (s *Session) deleteField(key string) {
	switch key {
	case KeyID:
		s.id = ""
	case KeyHandler:
		s.handler = nil
	case KeyPath:
		s.path = ""
	case KeySettings:
		s.settings = Config{}
	case KeyValues:
		s.values = make(map[string]any)
	}
}

// ID returns the session id, empty after Clear.
func (s *Session) ID() string { return s.id }

// Path returns the directory holding the session file.
func (s *Session) Path() string { return s.path }

// Config returns the session settings.
func (s *Session) Config() Config { return s.settings }

// Cleared reports whether Clear was called.
func (s *Session) Cleared() bool { return s.cleared }

// Values returns a copy of the stored values.
func (s *Session) Values() map[string]any {
	return maps.Clone(s.values)
}

// Keys returns the stored keys in sorted order.
func (s *Session) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetInt retrieves an integer value, accepting the number types the codecs produce.
func (s *Session) GetInt(key string) (int, bool) {
	v, ok := s.Lookup(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *Session) GetBool(key string) (bool, bool) {
	v, ok := s.Lookup(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Started returns the session creation time.
func (s *Session) Started() (time.Time, bool) {
	v, ok := s.values[KeyStarted]
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		return parsed, err == nil
	case interface{ Time() time.Time }:
		return t.Time(), true
	default:
		return time.Time{}, false
	}
}

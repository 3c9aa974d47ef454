package session

import (
	"fmt"
	"strings"
)

// BasePathPlaceholder is replaced with Settings.BasePath in Config.Directory.
const BasePathPlaceholder = "__base_path__"

// Kind selects the storage backend.
type Kind string

// KindFile stores every session in its own file.
const KindFile Kind = "file"

// ParseKind validates a storage type name from the settings.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindFile:
		return KindFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, s)
	}
}

// Config is the session block of the application settings.
type Config struct {
	// Type selects the storage backend; only "file" is supported
	Type string `env:"SESSION_TYPE" envDefault:"file" yaml:"type"`

	// Directory holds the session files and may contain BasePathPlaceholder
	Directory string `env:"SESSION_DIRECTORY" envDefault:"__base_path__/sessions" yaml:"directory"`

	// CookieName is the name of the cookie carrying the session id
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session" yaml:"cookie_name"`

	// Duration is the cookie lifetime in days (0 for a browser-session cookie)
	Duration int `env:"SESSION_DURATION" envDefault:"30" yaml:"duration"`

	// Codec names the serialization format of session files: gob, json or bson
	Codec string `env:"SESSION_CODEC" envDefault:"gob" yaml:"codec"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Type:       string(KindFile),
		Directory:  BasePathPlaceholder + "/sessions",
		CookieName: "session",
		Duration:   30,
		Codec:      CodecGob,
	}
}

// ResolveDirectory substitutes BasePathPlaceholder with basePath.
func (c Config) ResolveDirectory(basePath string) string {
	return strings.ReplaceAll(c.Directory, BasePathPlaceholder, basePath)
}

// Settings are the application-wide settings a request handler exposes.
// A nil Session block makes New fail with ErrMissingConfig.
type Settings struct {
	BasePath string  `yaml:"base_path"`
	Session  *Config `yaml:"session"`
}

// DefaultSettings returns settings rooted at the working directory with the
// default session block.
func DefaultSettings() Settings {
	cfg := DefaultConfig()
	return Settings{
		BasePath: ".",
		Session:  &cfg,
	}
}

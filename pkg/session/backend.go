package session

import (
	"context"
	"fmt"
)

// Backend persists session values by session id.
type Backend interface {
	// Load returns the stored values or an error wrapping ErrNotFound
	Load(ctx context.Context, id string) (map[string]any, error)

	// Save replaces the stored values
	Save(ctx context.Context, id string, values map[string]any) error

	// Delete removes the stored values; an absent id yields ErrNotFound
	Delete(ctx context.Context, id string) error
}

// NewBackend builds the backend selected by cfg. It also returns the resolved
// storage directory for file backends.
func NewBackend(cfg Config, basePath string) (Backend, string, error) {
	kind, err := ParseKind(cfg.Type)
	if err != nil {
		return nil, "", err
	}

	codec, err := CodecByName(cfg.Codec)
	if err != nil {
		return nil, "", err
	}

	switch kind {
	case KindFile:
		dir := cfg.ResolveDirectory(basePath)
		return NewFileBackend(dir, codec), dir, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Type)
	}
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o600
)

// FileBackend keeps one file per session at <dir>/<id>.
// Writes go through a temporary file and a rename, so a reader sees either the
// previous or the new content. Concurrent writers of one id are not
// coordinated: the last rename wins.
type FileBackend struct {
	dir   string
	codec Codec
}

// NewFileBackend returns a backend rooted at dir. A nil codec selects gob.
// The directory is created on first write.
func NewFileBackend(dir string, codec Codec) *FileBackend {
	if codec == nil {
		codec = GobCodec{}
	}
	return &FileBackend{dir: dir, codec: codec}
}

// Dir returns the directory holding the session files.
func (b *FileBackend) Dir() string { return b.dir }

// Codec returns the serialization format of the session files.
func (b *FileBackend) Codec() Codec { return b.codec }

// Path returns the file backing id.
func (b *FileBackend) Path(id string) (string, error) {
	if !ValidID(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(b.dir, id), nil
}

func (b *FileBackend) Load(ctx context.Context, id string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := b.Path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, errors.Join(ErrReadFailed, err)
	}

	return b.codec.Decode(data)
}

func (b *FileBackend) Save(ctx context.Context, id string, values map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := b.Path(id)
	if err != nil {
		return err
	}

	data, err := b.codec.Encode(values)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.dir, dirPerm); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	if err := writeFileAtomic(b.dir, path, data); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := b.Path(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in dir and renames it over path.
func writeFileAtomic(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

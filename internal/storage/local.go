package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes artifacts as plain files under a single directory.
// The directory is created on demand by every Save.
type LocalStorage struct {
	dir string
}

// NewLocalStorage returns a LocalStorage rooted at dir. Nothing is created yet.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Path returns the file path for name inside the storage directory.
func (l *LocalStorage) Path(name string) string {
	return filepath.Join(l.dir, name)
}

// Save writes data to <dir>/<name>, replacing any existing file.
func (l *LocalStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", l.dir, err)
	}

	path := l.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes <dir>/<name>. Missing files are ignored.
func (l *LocalStorage) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := l.Path(name)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

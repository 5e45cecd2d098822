package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStorage persists uploaded files under a name chosen by the caller.
type FileStorage interface {
	Save(ctx context.Context, name string, src io.Reader) error
}

type LocalStorage struct {
	dir string
	log *zap.Logger
}

// NewLocalStorage creates dir if needed.
func NewLocalStorage(dir string, log *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalStorage{
		dir: dir,
		log: log.With(zap.String("storage", "local")),
	}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes src to dir/name. A partially written file is removed on failure.
func (s *LocalStorage) Save(ctx context.Context, name string, src io.Reader) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		s.log.Error("Failed to store upload", zap.Error(err), zap.String("path", path))
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.log.Info("Upload stored", zap.String("file", name), zap.Int64("bytes", written))
	return nil
}

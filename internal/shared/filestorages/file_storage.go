package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrIsDirectory    = errors.New("is a directory")
	ErrInvalidKey     = errors.New("invalid file key")
	ErrInvalidRootDir = errors.New("invalid root directory")
)

// FileInfo describes an opened log source.
type FileInfo struct {
	Path string
	Size int64
}

// FileStorage gives read-only access to log sources on the local filesystem.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	// Open opens the named source for reading. The caller must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, *FileInfo, error)
}

type fileStorage struct {
	dir string
}

// NewFileStorage returns a FileStorage resolving relative names against rootDir.
// An empty rootDir resolves them against the working directory.
func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return &fileStorage{}, nil
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Open(ctx context.Context, name string) (io.ReadCloser, *FileInfo, error) {
	if name == "" {
		return nil, nil, ErrInvalidKey
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	fullPath := s.resolve(name)

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, fullPath)
	}

	return file, &FileInfo{Path: fullPath, Size: stat.Size()}, nil
}

func (s *fileStorage) resolve(name string) string {
	if s.dir == "" || filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.dir, name)
}

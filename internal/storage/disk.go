package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes files under a single directory on the local filesystem.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	// name is generated by the caller; strip any path components regardless
	dst := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func (s *DiskStore) Remove(_ context.Context, storedPath string) error {
	err := os.Remove(storedPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *DiskStore) Exists(storedPath string) bool {
	_, err := os.Stat(storedPath)
	return err == nil
}

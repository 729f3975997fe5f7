package services

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// fakeSaver keeps stored files in memory and records removals, so tests can
// assert the no-orphan guarantees without touching disk.
type fakeSaver struct {
	mu      sync.Mutex
	files   map[string][]byte
	removed []string
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{files: make(map[string][]byte)}
}

func (s *fakeSaver) Save(_ context.Context, name string, r io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	path := "mem/" + name
	s.files[path] = data
	return path, nil
}

func (s *fakeSaver) Remove(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	s.removed = append(s.removed, path)
	return nil
}

func (s *fakeSaver) Exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok
}

func (s *fakeSaver) put(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

package assetstore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists one value per key as a file under Dir. It backs the
// asset cache across process restarts; a stored value is trusted for the
// lifetime of the directory.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	raw, err := ioutil.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (s *FileStore) Set(key, value string) error {
	return ioutil.WriteFile(s.path(key), []byte(value), 0o644)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, filepath.Base(key))
}

// MemoryStore is the in-process store used in tests and as a fallback when
// no cache directory is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

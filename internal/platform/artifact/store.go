package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

var ErrNotFound = errors.New("artifact not found")

// Store is the binary artifact surface the payslip generator writes to.
type Store interface {
	Write(path string, data []byte) error
	Read(path string) ([]byte, error)
}

// FileStore keeps artifacts under a root directory on local disk.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

func (s *FileStore) Write(path string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (s *FileStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// MemStore is an in-memory store for tests.
type MemStore struct {
	mu    sync.Mutex
	files map[string][]byte

	// FailWrites makes every Write fail, for persist-failure paths.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{files: map[string][]byte{}}
}

func (s *MemStore) Write(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errors.New("write refused")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[path] = buf
	return nil
}

func (s *MemStore) Read(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

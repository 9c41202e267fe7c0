// file: internals/helpers/docstore/docstore.go
package docstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store membaca/menulis dokumen JSON utuh di satu direktori data.
// Setiap mutasi adalah read-modify-write di bawah mutex per-dokumen,
// jadi dua penulis ke file yang sama tidak saling menimpa.
// Asumsi: satu proses penulis (tidak ada file lock lintas proses).
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load membaca dokumen ke out. Return false (tanpa error) bila file belum ada,
// supaya caller bisa pakai default kosong.
func (s *Store) Load(name string, out interface{}) (bool, error) {
	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// Save menulis ulang seluruh dokumen (pretty-printed, human-inspectable).
// Direktori data dibuat lazily pada tulisan pertama.
func (s *Store) Save(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(name), b, 0o644)
}

// WithLock menserialisasi read-modify-write untuk satu dokumen.
func (s *Store) WithLock(name string, fn func() error) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// FileStore keeps values in memory and writes them to a msgpack file on Flush
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
	dirty  bool
}

// OpenFileStore loads the store at path. A missing file yields an empty store;
// a corrupt one is an error so the caller can decide to start fresh.
func OpenFileStore(path string) (*FileStore, error) {
	fst := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fst, nil
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	if len(data) == 0 {
		return fst, nil
	}

	if err := msgpack.Unmarshal(data, &fst.values); err != nil {
		fst.values = make(map[string]string)
		return fst, fmt.Errorf("failed to decode save file %s: %w", path, err)
	}
	if fst.values == nil {
		fst.values = make(map[string]string)
	}
	return fst, nil
}

// Path returns the backing file
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if old, ok := f.values[key]; ok && old == value {
		return
	}
	f.values[key] = value
	f.dirty = true
}

// Flush writes the store to disk through a temporary file and rename.
// Nothing is written when no value changed since the last flush.
func (f *FileStore) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.dirty {
		return nil
	}

	data, err := msgpack.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("failed to encode save data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".rush80-*")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write save data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close save data: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace save file: %w", err)
	}

	f.dirty = false
	return nil
}

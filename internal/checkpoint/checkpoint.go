package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"threatwatch/internal/models"
)

var (
	ErrCorrupt    = errors.New("checkpoint file is corrupt")
	ErrRegression = errors.New("checkpoint would move the confirmed block backwards")
)

// FileStore keeps the monitor checkpoint in a single JSON file. Saves go through a temp
// file and a rename so a crash never leaves a partially written checkpoint behind.
type FileStore struct {
	path string

	mu   sync.Mutex
	last uint64
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating checkpoint dir: %w", err)
		}
	}

	store := &FileStore{path: path}
	cp, ok, err := store.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		store.last = cp.LastConfirmedBlock
	}
	return store, nil
}

// Load returns ok=false when no checkpoint has been written yet.
func (s *FileStore) Load() (models.Checkpoint, bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Checkpoint{}, false, nil
		}
		return models.Checkpoint{}, false, fmt.Errorf("reading checkpoint: %w", err)
	}
	if len(b) == 0 {
		return models.Checkpoint{}, false, nil
	}

	var cp models.Checkpoint
	if err := json.Unmarshal(b, &cp); err != nil {
		return models.Checkpoint{}, false, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, err)
	}
	return cp, true, nil
}

func (s *FileStore) Save(cp models.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cp.LastConfirmedBlock < s.last {
		return fmt.Errorf("%w: %d < %d", ErrRegression, cp.LastConfirmedBlock, s.last)
	}

	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp checkpoint: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp checkpoint: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp checkpoint: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing checkpoint: %w", err)
	}

	s.last = cp.LastConfirmedBlock
	return nil
}

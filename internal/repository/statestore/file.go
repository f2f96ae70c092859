// Package statestore persists the single application snapshot under the
// fixed name domain.StateKey. All backends share the same tolerance rules:
// a missing document loads as nil and a malformed one is discarded with a
// warning, leaving the caller on its in-memory defaults.
package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/logger"
)

type fileStore struct {
	path string
}

// NewFileStore persists the snapshot as <dir>/linkgen_state.json.
func NewFileStore(dir string) domain.StateStore {
	return &fileStore{path: filepath.Join(dir, domain.StateKey+".json")}
}

func (s *fileStore) Load(_ context.Context) (*domain.AppSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("statestore: read %s: %w", s.path, err)
	}

	var snap domain.AppSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Log.Warn("Discarding malformed state file", "path", s.path, "error", err)
		return nil, nil
	}
	return &snap, nil
}

func (s *fileStore) Save(_ context.Context, snap *domain.AppSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("statestore: marshal snapshot: %w", err)
	}

	// Write-then-rename keeps a crashed save from corrupting the document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("statestore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("statestore: rename %s: %w", tmp, err)
	}
	return nil
}

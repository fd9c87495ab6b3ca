// Package history keeps the outcome of past gate runs in the project's
// .lintgate directory.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintgate/lintgate/internal/domain"
)

const historyFile = ".lintgate/history/runs.json"

// DefaultLimit is the number of runs New keeps.
const DefaultLimit = 200

// ErrCorrupt is returned when the history file exists but is not a JSON list
// of runs. Save refuses to overwrite such a file.
var ErrCorrupt = errors.New("corrupt history file")

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	limit int
}

// New creates a FileHistory keeping the last DefaultLimit runs.
func New() *FileHistory {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit creates a FileHistory keeping the last limit runs. A limit of
// zero or less keeps every run.
func NewWithLimit(limit int) *FileHistory {
	return &FileHistory{limit: limit}
}

// Path returns the history file of a project.
func Path(projectPath string) string {
	return filepath.Join(projectPath, historyFile)
}

// Save appends entry, dropping the oldest runs beyond the limit. The file is
// replaced atomically so an interrupted build never leaves half a file.
func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	fp := Path(projectPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", fp, err)
	}
	return nil
}

// Load returns the recorded runs, oldest first. A missing file is an empty
// history.
func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	fp := Path(projectPath)

	data, err := os.ReadFile(fp)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", fp, err)
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, fp, err)
	}

	return entries, nil
}

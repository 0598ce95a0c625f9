package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/phenomvv/aetherapp/internal/model"
)

// ErrInvalidBackup means the imported document is not a task array.
var ErrInvalidBackup = errors.New("backup document must be an array of tasks")

// ExportJSON serializes the full collection for download.
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Snapshot(), "", "  ")
}

// ExportFilename returns the download name for a backup taken now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("aether-tasks-backup-%s.json", now.Format("2006-01-02"))
}

// ImportJSON replaces the entire collection with the tasks in the
// document. A document whose top level is not an array is rejected and
// the existing collection is left untouched.
func (s *Store) ImportJSON(data []byte) (int, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrInvalidBackup
	}

	imported := []model.Task{}
	if err := json.Unmarshal(trimmed, &imported); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := s.ReplaceAll(imported); err != nil {
		return 0, err
	}
	return len(imported), nil
}

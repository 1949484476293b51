package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Tiliavir/intrack/internal/model"
)

// SnapshotVersion is written to every data file.
const SnapshotVersion = 1

// DataFileName is the data file inside the base directory.
const DataFileName = "internships.json"

// Snapshot is the top-level structure stored in the data file.
type Snapshot struct {
	Version     int                `json:"version"`
	Internships []model.Internship `json:"internships"`
	// View holds the IDs of the displayed list when a filter was active,
	// so that indices typed in the next invocation address the same rows.
	View []uuid.UUID `json:"view,omitempty"`
	// Filtered marks View as active even when it is empty.
	Filtered bool `json:"filtered,omitempty"`
}

// BaseDir returns the root data directory: $INTRACK_HOME, or ~/.intrack.
func BaseDir() (string, error) {
	if dir := os.Getenv("INTRACK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".intrack"), nil
}

// DataFilePath returns the path of the data file under base.
func DataFilePath(base string) string {
	return filepath.Join(base, DataFileName)
}

// Load reads the snapshot at path. Returns an empty Snapshot if not found.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Snapshot{Version: SnapshotVersion, Internships: []model.Internship{}}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, backupCorrupt(path, err)
	}
	for _, in := range s.Internships {
		if err := in.Validate(); err != nil {
			return Snapshot{}, backupCorrupt(path, err)
		}
	}
	if s.Internships == nil {
		s.Internships = []model.Internship{}
	}
	return s, nil
}

// backupCorrupt moves an unreadable data file aside so the next save
// starts clean.
func backupCorrupt(path string, cause error) error {
	backupPath := path + ".corrupt"
	_ = os.Rename(path, backupPath)
	return fmt.Errorf("corrupt data in %s (backed up to %s): %w", path, backupPath, cause)
}

// Save atomically writes the snapshot to path.
func Save(path string, s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	s.Version = SnapshotVersion
	if s.Internships == nil {
		s.Internships = []model.Internship{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

// FileCache persists the latest standings snapshot to a single JSON file so
// standings survive restarts when the upstream feed is down.
type FileCache struct {
	path string
}

// NewFileCache constructs a cache writing to the given file path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Path exposes the cache file location (primarily for testing).
func (c *FileCache) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// SaveStandings writes the records as a JSON array. The write is atomic:
// a temp file is renamed over the target so readers never see a partial
// file. Identical content is not rewritten.
func (c *FileCache) SaveStandings(records []standings.TeamRecord) error {
	if c == nil || c.path == "" {
		return errors.New("standings cache not configured")
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(c.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// LoadStandings reads the cached records back. A missing file returns
// os.ErrNotExist so callers can treat it as a cold start.
func (c *FileCache) LoadStandings() ([]standings.TeamRecord, error) {
	if c == nil || c.path == "" {
		return nil, errors.New("standings cache not configured")
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []standings.TeamRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

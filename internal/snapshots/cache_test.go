package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
)

func sampleRecords() []standings.TeamRecord {
	return []standings.TeamRecord{
		{Team: "Kansas City Chiefs", Division: "AFC West", Wins: 12, Losses: 1, Ties: 0},
		{Team: "Philadelphia Eagles", Division: "NFC East", Wins: 11, Losses: 2, Ties: 0},
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings_cache.json")
	cache := NewFileCache(path)

	if err := cache.SaveStandings(sampleRecords()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := cache.LoadStandings()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 2 || got[0].Team != "Kansas City Chiefs" || got[1].Division != "NFC East" {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestFileCacheCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "standings_cache.json")
	cache := NewFileCache(path)

	if err := cache.SaveStandings(sampleRecords()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected cache file on disk: %v", err)
	}
}

func TestFileCacheSkipsIdenticalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings_cache.json")
	cache := NewFileCache(path)

	if err := cache.SaveStandings(sampleRecords()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	first, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	if err := cache.SaveStandings(sampleRecords()); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	second, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Fatal("identical content should not be rewritten")
	}
}

func TestFileCacheMissingFile(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "missing.json"))
	_, err := cache.LoadStandings()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFileCacheCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings_cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cache := NewFileCache(path)
	if _, err := cache.LoadStandings(); err == nil {
		t.Fatal("expected decode error for corrupt cache")
	}
}

func TestFileCacheUnconfigured(t *testing.T) {
	var cache *FileCache
	if err := cache.SaveStandings(sampleRecords()); err == nil {
		t.Fatal("expected error from nil cache")
	}
	if _, err := cache.LoadStandings(); err == nil {
		t.Fatal("expected error from nil cache")
	}
	if cache.Path() != "" {
		t.Fatal("expected empty path from nil cache")
	}
}

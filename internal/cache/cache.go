// Package cache implements the incremental scan cache: per-file content
// hashes paired with the findings produced for that content. A hash hit
// replays the stored findings, so cached and uncached scans of the same tree
// produce identical output.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/secretsweep/secretsweep/internal/types"
)

// Entry records one file's content hash and the findings produced for it.
type Entry struct {
	Hash     string          `json:"hash"`
	Findings []types.Finding `json:"findings,omitempty"`
}

// DB maps file paths (as emitted in findings) to cached entries.
type DB struct {
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing the cache under .git to avoid accidental commits.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "secretsweep_cache.json")
	}
	return filepath.Join(root, ".secretsweep_cache.json")
}

// Load reads the cache DB for root. A missing or unreadable cache yields an
// empty DB and the underlying error; callers treat that as a cold cache.
func Load(root string) (DB, error) {
	empty := DB{Entries: map[string]Entry{}}
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return empty, err
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return empty, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save writes the cache DB for root. The file carries finding values, so it
// is written owner-only.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(defaultPath(root), b, 0600)
}

// Lookup returns the cached findings for path if the stored hash matches.
func (db DB) Lookup(path, hash string) ([]types.Finding, bool) {
	e, ok := db.Entries[path]
	if !ok || e.Hash != hash {
		return nil, false
	}
	return e.Findings, true
}

// Hash returns the content hash used as a cache key: xxhash64 in fixed-width
// hex.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

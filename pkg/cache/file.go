package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores rendered artifacts on the local filesystem, the
// backend behind CLI runs. Entries are sharded by artifact kind
// (stylesheets, rule dumps, cascade diagrams) so the cache can be
// inspected and cleared per kind.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating the
// directory if it does not exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry wraps a stored artifact with its provenance and expiry.
type fileEntry struct {
	Kind      string    `json:"kind"`
	Data      []byte    `json:"data"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves an artifact. Expired or unreadable entries are removed
// and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores an artifact. A ttl of zero means the entry never expires;
// rendering is deterministic, so expiry is a storage bound, not a
// staleness one.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{
		Kind:    artifactKind(key),
		Data:    data,
		SavedAt: time.Now(),
	}
	if ttl > 0 {
		entry.ExpiresAt = entry.SavedAt.Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes an artifact. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// Purge removes every stored artifact and reports how many were
// removed per artifact kind.
func (c *FileCache) Purge() (map[string]int, error) {
	shards, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, shard := range shards {
		if !shard.IsDir() {
			continue
		}
		root := filepath.Join(c.dir, shard.Name())
		removed := 0
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if err := os.Remove(path); err == nil {
				removed++
			}
			return nil
		})
		_ = os.RemoveAll(root)
		if removed > 0 {
			counts[shard.Name()] = removed
		}
	}
	return counts, nil
}

// path maps a key to its file: one top-level directory per artifact
// kind, then a two-character fan-out over the key hash.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, artifactKind(key), hash[:2], hash[2:]+".json")
}

// artifactKind extracts the kind token from a generated key. Keys are
// "kind:hash", optionally behind a deployment scope prefix, so the
// kind is the second-to-last colon-separated segment. Keys without a
// kind fall into the "misc" shard.
func artifactKind(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 || parts[len(parts)-2] == "" {
		return "misc"
	}
	return parts[len(parts)-2]
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)

package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultPath returns the cache file location under the user's cache
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	return filepath.Join(dir, "mvg-commute", "connections.gob"), nil
}

// Serialize encodes the cache to bytes using gob encoding.
func Serialize(cc ConnectionsCache) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cc); err != nil {
		return nil, fmt.Errorf("failed to encode connection cache: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize decodes a cache previously written by Serialize.
func Deserialize(data []byte) (ConnectionsCache, error) {
	var cc ConnectionsCache
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&cc); err != nil {
		return ConnectionsCache{}, fmt.Errorf("failed to decode connection cache: %w", err)
	}
	return cc, nil
}

// Load reads the cache file at path. Any failure counts as a cache
// miss: the returned cache is empty and ok is false. A missing or
// corrupt cache merely costs extra network calls, never the run.
func Load(path string) (cc ConnectionsCache, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("No usable cache at %s: %v", path, err)
		return ConnectionsCache{}, false
	}
	cc, err = Deserialize(data)
	if err != nil {
		log.Printf("Discarding unreadable cache at %s: %v", path, err)
		return ConnectionsCache{}, false
	}
	return cc, true
}

// Save writes the cache to path, creating parent directories as
// needed. It is called only after the whole pipeline has run, so the
// previous file stays intact when any earlier step fails.
func Save(path string, cc ConnectionsCache) error {
	data, err := Serialize(cc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache to %s: %w", path, err)
	}
	return nil
}

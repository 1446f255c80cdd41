// Package storage provides the durable client-side key/value store that
// stands in for the browser's localStorage: auth token, current user,
// and the most recent CV snapshot all live here between runs.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known store keys.
const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyUserType  = "user_type"
	KeyCV        = "currentCV"
	KeyCVDocx    = "currentCVDocx"
	DefaultsFile = "store.json"
)

// Store is a file-backed string key/value store. Writes are atomic
// (temp file + rename) and serialized by a mutex; the interaction model
// is single-writer per process.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// DefaultPath returns the store location under the user's home
// directory (~/.voicecv/store.json), or a relative fallback when the
// home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".voicecv", DefaultsFile)
	}
	return filepath.Join(home, ".voicecv", DefaultsFile)
}

// Open loads the store at path, creating an empty store when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	return s, nil
}

// Get returns the value for key, and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// GetJSON decodes the value for key into out. Returns false when the
// key is absent; decode failures are returned as errors.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	raw, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("failed to decode stored %s: %w", key, err)
	}
	return true, nil
}

// Set writes key=value and persists the store.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// SetJSON encodes value as JSON under key and persists the store.
func (s *Store) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(key, string(raw))
}

// Delete removes keys and persists the store.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return s.flush()
}

// Clear removes every key and persists the store.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string]string{}
	return s.flush()
}

// flush writes the store atomically. Callers must hold mu.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

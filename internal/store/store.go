// Package store persists small named values in a JSON object file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// BestScoreKey names the persisted best score.
const BestScoreKey = "bestScore"

type Store struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open reads the file at path. A missing file gives an empty store. A file
// that is not a JSON object also gives an empty store, together with an
// error the caller may log; the returned store is usable either way.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]json.RawMessage{}}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = map[string]json.RawMessage{}
		return s, fmt.Errorf("decode %s: %w", path, err)
	}
	if s.data == nil {
		s.data = map[string]json.RawMessage{}
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Int returns the value under key as a non-negative integer. Values saved
// as strings are accepted. Missing, malformed or negative values read as 0.
func (s *Store) Int(key string) int {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0
		}
		if n, err = strconv.Atoi(str); err != nil {
			return 0
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// SetInt stores v under key and writes the file.
func (s *Store) SetInt(key string, v int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// BestScore is a shorthand for Int(BestScoreKey).
func (s *Store) BestScore() int {
	return s.Int(BestScoreKey)
}

// SaveBestScore writes score only when it beats the stored value.
func (s *Store) SaveBestScore(score int) error {
	if score <= s.BestScore() {
		return nil
	}
	return s.SetInt(BestScoreKey, score)
}

// flush writes through a temp file so a crash never leaves a torn file.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".signsnake-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

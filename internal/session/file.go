package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type fileSession struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// FileStore persists the session as JSON so a signed-in user stays signed in
// across CLI invocations. Reads are served from memory after load.
type FileStore struct {
	path string

	mu      sync.RWMutex
	current fileSession
}

// OpenFileStore loads the session at path. A missing file is an empty session.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s.current); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

func (s *FileStore) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.Token == "" {
		return Profile{}, false
	}
	return s.current.Profile, true
}

func (s *FileStore) Save(token string, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fileSession{Token: token, Profile: p}
	b, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	// Write to a temp file first so a crash never leaves a torn session.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}

	s.current = next
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Keep the in-memory session until the file is gone, otherwise a failed
	// remove would look signed out now and signed in on the next run.
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	s.current = fileSession{}
	return nil
}

// Package session holds the signed-in user's bearer token and a minimal
// profile for the lifetime of the process, optionally persisted to disk.
package session

import (
	"errors"
	"sync"
)

var ErrNoSession = errors.New("not signed in")

type Profile struct {
	UserID   int    `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Store is the token holder. Token is read before every outgoing request;
// Save runs on login and registration, Clear on logout.
type Store interface {
	Token() string
	Profile() (Profile, bool)
	Save(token string, p Profile) error
	Clear() error
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	profile Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return Profile{}, false
	}
	return s.profile, true
}

func (s *MemoryStore) Save(token string, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = p
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = Profile{}
	return nil
}

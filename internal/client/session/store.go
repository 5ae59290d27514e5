// Package session persists the client's authentication state between runs.
// The state file mirrors the web client's local storage: the token under
// "authToken" and the cached user summary under "user". Loading never talks
// to the server; a stale token surfaces on the next protected call.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ianishdubey/FitZoneBack/internal/client/api"
)

type state struct {
	AuthToken       string           `json:"authToken"`
	User            *api.UserSummary `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
}

type Store struct {
	mu    sync.Mutex
	path  string
	state state
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the state file. A missing file is an empty session, not an
// error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.state = state{}
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &s.state)
}

// SetSession stores the token and user after a successful register or login
// and persists immediately.
func (s *Store) SetSession(token string, user *api.UserSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{
		AuthToken:       token,
		User:            user,
		IsAuthenticated: token != "" && user != nil,
	}
	return s.persist()
}

// UpdateUser replaces the cached user summary, keeping the token.
func (s *Store) UpdateUser(user *api.UserSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = user
	return s.persist()
}

// Clear logs out: the session file is reset to an anonymous state. The old
// token stays valid server-side until it expires.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{}
	return s.persist()
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AuthToken
}

func (s *Store) CurrentUser() *api.UserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated && s.state.AuthToken != "" && s.state.User != nil
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

package client

import (
	"Recipe-Finder/domain"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNoSession = errors.New("no stored session")

// Session is what survives between client runs. Logging out only deletes it;
// the token stays valid on the server until it expires.
type Session struct {
	Token string             `json:"token"`
	User  domain.UserSummary `json:"user"`
}

type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath is recipe-finder/session.json under the user config dir.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recipe-finder", "session.json"), nil
}

func (s *SessionStore) Path() string {
	return s.path
}

func (s *SessionStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.Token == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

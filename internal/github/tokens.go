package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"

	"github.com/sevigo/accelerator-pr/internal/config"
)

// ErrNotAuthenticated is returned when neither a configured token nor a
// cached login is available.
var ErrNotAuthenticated = errors.New("not logged in to GitHub")

// TokenStore hands out the credentials shared by the API client and git.
// A token from the configuration wins until a login replaces it; logins are
// cached in the user's state directory.
type TokenStore struct {
	fs     afero.Fs
	path   string
	mu     sync.Mutex
	static string
}

var _ oauth2.TokenSource = (*TokenStore)(nil)

// NewTokenStore returns a store caching logins under the XDG state directory.
func NewTokenStore(cfg *config.Config, fsys afero.Fs) (*TokenStore, error) {
	path, err := xdg.StateFile(config.AppName + "/token.json")
	if err != nil {
		return nil, fmt.Errorf("failed to locate token cache: %w", err)
	}
	return NewTokenStoreAt(fsys, path, cfg.GitHub.Token), nil
}

// NewTokenStoreAt returns a store caching logins at path.
func NewTokenStoreAt(fsys afero.Fs, path, static string) *TokenStore {
	return &TokenStore{fs: fsys, path: path, static: static}
}

// Token implements oauth2.TokenSource.
func (s *TokenStore) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.static != "" {
		return &oauth2.Token{AccessToken: s.static, TokenType: "bearer"}, nil
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token cache: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("token cache %s is corrupt: %w", s.path, err)
	}
	if tok.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}
	return &tok, nil
}

// HasToken reports whether Token would return credentials.
func (s *TokenStore) HasToken() bool {
	_, err := s.Token()
	return err == nil
}

// Save caches tok and makes it the active credential for this process.
func (s *TokenStore) Save(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token cache directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	s.static = ""
	return nil
}

// Clear forgets the cached login.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

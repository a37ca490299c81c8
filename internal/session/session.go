// Package session persists the authenticated session (bearer token and
// account id) between invocations. The store is an explicit object injected
// into the API client and commands; nothing reads it ambiently.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/annolab/labelctl/internal/errors"
)

// Store reads and writes the session file. All operations are synchronous;
// the zero value is not usable, use NewStore.
type Store struct {
	path string
}

// persisted is the on-disk session shape.
type persisted struct {
	Token     string `json:"token,omitempty"`
	AccountID string `json:"account_id,omitempty"`
}

// NewStore creates a store backed by the given file path. The file is
// created lazily on the first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.update(func(p *persisted) { p.Token = token })
}

// GetToken returns the stored token, or an empty string when absent.
func (s *Store) GetToken() string {
	return s.load().Token
}

// RemoveToken deletes the stored token.
func (s *Store) RemoveToken() error {
	return s.update(func(p *persisted) { p.Token = "" })
}

// SetAccountID persists the account identifier.
func (s *Store) SetAccountID(id string) error {
	return s.update(func(p *persisted) { p.AccountID = id })
}

// GetAccountID returns the stored account id, or an empty string when absent.
func (s *Store) GetAccountID() string {
	return s.load().AccountID
}

// RemoveAccountID deletes the stored account id.
func (s *Store) RemoveAccountID() error {
	return s.update(func(p *persisted) { p.AccountID = "" })
}

// IsAuthenticated reports whether a token is present. No validation of the
// token shape or expiry is performed here.
func (s *Store) IsAuthenticated() bool {
	return s.GetToken() != ""
}

// Logout removes both the token and the account id.
func (s *Store) Logout() error {
	return s.update(func(p *persisted) {
		p.Token = ""
		p.AccountID = ""
	})
}

// TokenExpiry parses the stored token as a JWT without verifying its
// signature and returns the expiry claim. ok is false when no token is
// stored, the token is not a JWT, or it carries no expiry.
func (s *Store) TokenExpiry() (expiry time.Time, ok bool) {
	token := s.GetToken()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the stored token carries an expiry claim in the
// past. Tokens without a parseable expiry are never reported as expired;
// the server remains the authority and rejects them on use.
func (s *Store) IsExpired(now time.Time) bool {
	expiry, ok := s.TokenExpiry()
	return ok && expiry.Before(now)
}

func (s *Store) load() persisted {
	var p persisted
	data, err := os.ReadFile(s.path)
	if err != nil {
		return p
	}
	// A corrupt session file reads as an empty session.
	_ = json.Unmarshal(data, &p)
	return p
}

func (s *Store) update(mutate func(*persisted)) error {
	p := s.load()
	mutate(&p)

	if p.Token == "" && p.AccountID == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return errors.New(err).
				Component("session").
				Category(errors.CategoryState).
				Context("path", s.path).
				Build()
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.New(err).
			Component("session").
			Category(errors.CategoryState).
			Context("path", s.path).
			Build()
	}

	data, err := json.Marshal(&p)
	if err != nil {
		return errors.New(err).
			Component("session").
			Category(errors.CategoryState).
			Build()
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.New(err).
			Component("session").
			Category(errors.CategoryState).
			Context("path", s.path).
			Build()
	}
	return nil
}

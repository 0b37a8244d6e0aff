// Package store persists refresh tokens between CLI sessions in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Load when no token is stored for the account.
var ErrNotFound = errors.New("no stored token")

const schema = `
CREATE TABLE IF NOT EXISTS tokens (
	account        TEXT PRIMARY KEY,
	refresh_token  TEXT NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);`

// TokenStore holds refresh tokens keyed by account name.
type TokenStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a token store at the given path. The
// path can be ":memory:" for an in-memory store.
func Open(path string) (*TokenStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping token store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token table: %w", err)
	}

	return &TokenStore{db: db}, nil
}

// Close closes the underlying database.
func (s *TokenStore) Close() error {
	return s.db.Close()
}

// Save stores or replaces the refresh token for an account.
func (s *TokenStore) Save(account, refreshToken string) error {
	_, err := s.db.Exec(
		`INSERT INTO tokens (account, refresh_token, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(account) DO UPDATE SET refresh_token = excluded.refresh_token, updated_at = excluded.updated_at`,
		account, refreshToken, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load returns the refresh token stored for an account.
func (s *TokenStore) Load(account string) (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT refresh_token FROM tokens WHERE account = ?`, account).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// Delete removes the stored token for an account, if any.
func (s *TokenStore) Delete(account string) error {
	if _, err := s.db.Exec(`DELETE FROM tokens WHERE account = ?`, account); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/courierkit/pathao-go"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/oauth2"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS pathao_token (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	token_type TEXT NOT NULL,
	refresh_token TEXT,
	expiry TIMESTAMP NOT NULL
);`

var _ pathao.TokenStore = (*SQLite)(nil)

// SQLite persists the credential in a single-row table, for CLI-style
// callers that keep a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// token table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	store, err := NewSQLite(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLite wraps an existing connection and ensures the token table exists.
func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("creating token table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) (*oauth2.Token, error) {
	const query = `SELECT access_token, token_type, refresh_token, expiry FROM pathao_token WHERE id = 1`

	var (
		token        oauth2.Token
		refreshToken sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&token.AccessToken, &token.TokenType, &refreshToken, &token.Expiry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pathao.ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}

	if refreshToken.Valid {
		token.RefreshToken = refreshToken.String
	}
	return &token, nil
}

func (s *SQLite) Save(ctx context.Context, token *oauth2.Token) error {
	const query = `
INSERT INTO pathao_token (id, access_token, token_type, refresh_token, expiry)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	access_token = excluded.access_token,
	token_type = excluded.token_type,
	refresh_token = excluded.refresh_token,
	expiry = excluded.expiry`

	var refreshToken *string
	if token.RefreshToken != "" {
		refreshToken = &token.RefreshToken
	}

	if _, err := s.db.ExecContext(ctx, query, token.AccessToken, token.TokenType, refreshToken, token.Expiry); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

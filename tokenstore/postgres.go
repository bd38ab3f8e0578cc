package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/courierkit/pathao-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS pathao_token (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	access_token TEXT NOT NULL,
	token_type TEXT NOT NULL,
	refresh_token TEXT,
	expiry TIMESTAMPTZ NOT NULL
);`

var _ pathao.TokenStore = (*Postgres)(nil)

// Postgres persists the credential in a single-row table, for server
// deployments that already run a database.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an existing pool and ensures the token table exists.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("creating token table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (s *Postgres) Load(ctx context.Context) (*oauth2.Token, error) {
	const query = `SELECT access_token, token_type, refresh_token, expiry FROM pathao_token WHERE id = 1`

	var (
		token        oauth2.Token
		refreshToken *string
	)
	err := s.pool.QueryRow(ctx, query).Scan(&token.AccessToken, &token.TokenType, &refreshToken, &token.Expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pathao.ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}

	if refreshToken != nil {
		token.RefreshToken = *refreshToken
	}
	return &token, nil
}

func (s *Postgres) Save(ctx context.Context, token *oauth2.Token) error {
	const query = `
INSERT INTO pathao_token (id, access_token, token_type, refresh_token, expiry)
VALUES (1, $1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	access_token = EXCLUDED.access_token,
	token_type = EXCLUDED.token_type,
	refresh_token = EXCLUDED.refresh_token,
	expiry = EXCLUDED.expiry`

	var refreshToken *string
	if token.RefreshToken != "" {
		refreshToken = &token.RefreshToken
	}

	if _, err := s.pool.Exec(ctx, query, token.AccessToken, token.TokenType, refreshToken, token.Expiry); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

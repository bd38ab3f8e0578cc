// Package tokenstore provides TokenStore implementations for the pathao
// package: in-process, SQLite, Redis, and Postgres.
package tokenstore

import (
	"context"
	"sync"

	"github.com/courierkit/pathao-go"
	"golang.org/x/oauth2"
)

var _ pathao.TokenStore = (*Memory)(nil)

// Memory holds the credential in process memory. Useful for tests and for
// callers that do not need the token to survive restarts.
type Memory struct {
	mu    sync.Mutex
	token *oauth2.Token
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Load(_ context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		return nil, pathao.ErrNoToken
	}
	token := *s.token
	return &token, nil
}

func (s *Memory) Save(_ context.Context, token *oauth2.Token) error {
	s.mu.Lock()
	copied := *token
	s.token = &copied
	s.mu.Unlock()
	return nil
}

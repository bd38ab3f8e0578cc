package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courierkit/pathao-go"
	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

const defaultRedisKey = "pathao:token"

var _ pathao.TokenStore = (*Redis)(nil)

// Redis persists the credential as a JSON value, so multiple processes can
// share one token and stay under the provider's grant rate limits.
type Redis struct {
	client *redis.Client
	key    string
}

type RedisOption func(*Redis)

func WithRedisKey(key string) RedisOption {
	return func(s *Redis) { s.key = key }
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	s := &Redis{client: client, key: defaultRedisKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenRedis connects to the given redis URL and pings it before returning a
// store.
func OpenRedis(ctx context.Context, url string, opts ...RedisOption) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return NewRedis(client, opts...), nil
}

func (s *Redis) Load(ctx context.Context) (*oauth2.Token, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, pathao.ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}

	var token oauth2.Token
	if err := go_json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("decoding stored token: %w", err)
	}
	return &token, nil
}

func (s *Redis) Save(ctx context.Context, token *oauth2.Token) error {
	raw, err := go_json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

package pathao

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/courierkit/pathao-go/internal/xhttp"
	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const tokenRoute = "/issue-token"

// ExpiryMargin is how long before the real expiry a token is treated as
// stale, so a token never expires mid-flight of the request it authorizes.
const ExpiryMargin = 5 * time.Minute

// ErrNoToken is returned by TokenStore implementations when nothing has been
// persisted yet.
var ErrNoToken = errors.New("pathao: no stored token")

// TokenStore persists the credential across process restarts. Implementations
// live in the tokenstore package; any Load/Save pair works.
type TokenStore interface {
	// Load returns the persisted token, or ErrNoToken if none exists.
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
}

type TokenConfig struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string

	// BaseURL defaults to BaseURL; use SandboxBaseURL for sandbox credentials.
	BaseURL string

	// Store is optional. When set, the source loads a persisted credential on
	// first use and saves every newly granted one.
	Store TokenStore

	HTTPClient *http.Client
}

var _ oauth2.TokenSource = (*TokenSource)(nil)

// TokenSource owns the credential lifecycle: issue, cache, refresh, persist.
// Concurrent callers of an expired source share a single grant request.
type TokenSource struct {
	cfg    TokenConfig
	client *http.Client

	group singleflight.Group

	mu     sync.Mutex
	token  *oauth2.Token
	loaded bool
}

func NewTokenSource(cfg TokenConfig) *TokenSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = xhttp.NewHTTPClient(xhttp.WithTimeout(10 * time.Second))
	}

	return &TokenSource{cfg: cfg, client: client}
}

// Token implements oauth2.TokenSource.
func (s *TokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.TokenContext(ctx)
}

// AccessToken returns a currently valid access token, performing at most one
// grant round (refresh, then full re-issue) when the cached one is stale.
func (s *TokenSource) AccessToken(ctx context.Context) (string, error) {
	token, err := s.TokenContext(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (s *TokenSource) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	token, err := s.cached(ctx)
	if err != nil {
		return nil, err
	}
	if token != nil {
		return token, nil
	}

	// One grant in flight per source; late arrivals wait for its result.
	v, err, _ := s.group.Do("grant", func() (any, error) {
		if token, err := s.cached(ctx); err != nil || token != nil {
			return token, err
		}
		return s.obtain(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

// cached returns the held token when its expiry is comfortably in the future,
// loading a persisted one on first use.
func (s *TokenSource) cached(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		if s.cfg.Store != nil {
			token, err := s.cfg.Store.Load(ctx)
			switch {
			case errors.Is(err, ErrNoToken):
			case err != nil:
				return nil, &AuthError{Message: "loading stored token", Cause: err}
			default:
				s.token = token
			}
		}
	}

	if s.token != nil && time.Until(s.token.Expiry) > ExpiryMargin {
		return s.token, nil
	}
	return nil, nil
}

// obtain runs one grant round: a refresh when a refresh token is held, then a
// full password-grant re-issue if refreshing is impossible or fails.
func (s *TokenSource) obtain(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	refreshToken := ""
	if s.token != nil {
		refreshToken = s.token.RefreshToken
	}
	s.mu.Unlock()

	var token *oauth2.Token
	if refreshToken != "" {
		refreshed, err := s.grant(ctx, grantRequest{
			ClientID:     s.cfg.ClientID,
			ClientSecret: s.cfg.ClientSecret,
			GrantType:    "refresh_token",
			RefreshToken: refreshToken,
		})
		if err == nil {
			token = refreshed
		}
	}

	if token == nil {
		issued, err := s.grant(ctx, grantRequest{
			ClientID:     s.cfg.ClientID,
			ClientSecret: s.cfg.ClientSecret,
			GrantType:    "password",
			Username:     s.cfg.Username,
			Password:     s.cfg.Password,
		})
		if err != nil {
			return nil, &AuthError{Message: "token issuance failed", Cause: err}
		}
		token = issued
	}

	if s.cfg.Store != nil {
		if err := s.cfg.Store.Save(ctx, token); err != nil {
			return nil, &AuthError{Message: "persisting token", Cause: err}
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return token, nil
}

type grantRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (s *TokenSource) grant(ctx context.Context, grantReq grantRequest) (*oauth2.Token, error) {
	body, err := go_json.Marshal(grantReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling grant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+apiPrefix+tokenRoute, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating grant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending grant request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("grant failed with status %d", resp.StatusCode)
	}

	var respBody struct {
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}

	if err := go_json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("decoding grant response: %w", err)
	}

	if respBody.AccessToken == "" {
		return nil, errors.New("grant response missing access_token")
	}

	// Expiry is fixed at grant time and never recomputed.
	return &oauth2.Token{
		AccessToken:  respBody.AccessToken,
		TokenType:    respBody.TokenType,
		RefreshToken: respBody.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(respBody.ExpiresIn) * time.Second),
	}, nil
}

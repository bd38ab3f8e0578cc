// Package pathao is a client for the Pathao Courier merchant API.
package pathao

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/courierkit/pathao-go/internal/xhttp"
	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

const (
	// BaseURL is the production courier API host.
	BaseURL = "https://api-hermes.pathao.com"
	// SandboxBaseURL is the host for sandbox credentials.
	SandboxBaseURL = "https://courier-api-sandbox.pathao.com"

	apiPrefix = "/aladdin/api/v1"
)

type Client struct {
	Store    StoreService
	Order    OrderService
	Location LocationService
	Pricing  PricingService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a Client that authorizes every request with a token from
// tokenSource. Pass a *TokenSource from NewTokenSource, or any other
// oauth2.TokenSource.
func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     BaseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
		timeout:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Never mutate a caller-supplied client; wrap a copy so their
	// RoundTripper keeps working underneath the bearer transport.
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.timeout))
	} else {
		copied := *httpClient
		httpClient = &copied
	}

	base := httpClient.Transport
	if base == nil {
		base = xhttp.NewTransport()
	}
	httpClient.Transport = &bearerTransport{
		base:        base,
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: httpClient,
		logger:     cfg.logger,
	}

	c.Store = &storeService{client: c}
	c.Order = &orderService{client: c}
	c.Location = &locationService{client: c}
	c.Pricing = &pricingService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
	logger      *slog.Logger
	timeout     time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

// WithSandbox points the client at the sandbox environment.
func WithSandbox() Option {
	return func(cfg *clientConfig) { cfg.baseURL = SandboxBaseURL }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = httpClient }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, payload any, result any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		body, err := go_json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set(xhttp.ContentType, "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

// classifyTransportError folds client-side failures (timeouts included) into
// the APIError kind so callers branch on one upstream-failure type. Token
// failures pass through untouched so they stay recognizable as AuthError.
func classifyTransportError(err error) error {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &APIError{StatusCode: http.StatusGatewayTimeout, Message: "request timed out: " + uerr.Err.Error()}
	}
	return &APIError{StatusCode: 0, Message: err.Error()}
}

type bearerTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*bearerTransport)(nil)

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

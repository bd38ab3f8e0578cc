package pathao

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	return New(source, WithBaseURL(server.URL))
}

func TestClientAuthorizesRequests(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-access-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "pathao-go/") {
			t.Errorf("User-Agent = %q, want pathao-go/ prefix", got)
		}
		if got := r.URL.Path; got != apiPrefix+"/city-list" {
			t.Errorf("path = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "ok", "code": 200, "data": {"data": []}}`))
	})

	if _, err := client.Location.Cities(context.Background()); err != nil {
		t.Fatalf("Cities() error: %v", err)
	}
}

type countingTransport struct {
	base  http.RoundTripper
	calls atomic.Int32
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return t.base.RoundTrip(req)
}

func TestClientKeepsCallerTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "ok", "code": 200, "data": {"data": []}}`))
	}))
	t.Cleanup(server.Close)

	counting := &countingTransport{base: http.DefaultTransport}
	custom := &http.Client{Transport: counting}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	client := New(source, WithBaseURL(server.URL), WithHTTPClient(custom))

	if _, err := client.Location.Cities(context.Background()); err != nil {
		t.Fatalf("Cities() error: %v", err)
	}

	// The caller's RoundTripper must still run underneath the bearer one.
	if n := counting.calls.Load(); n != 1 {
		t.Errorf("custom transport calls = %d, want 1", n)
	}

	// The caller's client must come back untouched.
	if _, ok := custom.Transport.(*countingTransport); !ok {
		t.Errorf("caller client mutated: Transport = %T", custom.Transport)
	}
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Unauthorized", "type": "error", "code": 401}`))
	})

	_, err := client.Location.Cities(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Cities() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if apiErr.Message != "Unauthorized" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Unauthorized")
	}
}

func TestClientAPIErrorNonJSONBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream gone"))
	})

	_, err := client.Location.Cities(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Cities() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusBadGateway)
	}
	if apiErr.Message != "upstream gone" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "upstream gone")
	}
}

func TestClientUnreachableHost(t *testing.T) {
	t.Parallel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	client := New(source, WithBaseURL("http://127.0.0.1:1"))

	_, err := client.Location.Cities(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Cities() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", apiErr.StatusCode)
	}
}

func TestClientTokenFailureSurfacesAuthError(t *testing.T) {
	t.Parallel()

	failing := oauth2.TokenSource(tokenSourceFunc(func() (*oauth2.Token, error) {
		return nil, &AuthError{Message: "token issuance failed"}
	}))
	client := New(failing, WithBaseURL("http://127.0.0.1:1"))

	_, err := client.Location.Cities(context.Background())

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Cities() error = %v, want *AuthError in chain", err)
	}
}

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }

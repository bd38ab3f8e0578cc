package xhttp

import (
	"net/http"

	"github.com/courierkit/pathao-go/internal/version"
)

type baseTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*baseTransport)(nil)

func (t *baseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "pathao-go/"+version.Get())
	return t.base.RoundTrip(req)
}

// NewTransport returns an http.RoundTripper with the SDK's standard headers.
func NewTransport() http.RoundTripper {
	return &baseTransport{base: http.DefaultTransport}
}

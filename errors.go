package pathao

import (
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// ValidationError reports a bad caller input. It is returned before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pathao: invalid %s: %s", e.Field, e.Message)
}

// AuthError reports a failure to issue or refresh an access token. Callers
// must treat it as non-retryable without fixing credentials.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return "pathao: " + e.Message + ": " + e.Cause.Error()
	}
	return "pathao: " + e.Message
}

func (e *AuthError) Unwrap() error { return e.Cause }

// APIError reports a non-2xx response from the courier API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pathao api: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Body:       body,
		}
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = resp.Status
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Body:       body,
	}
}

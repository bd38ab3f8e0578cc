package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/courierkit/pathao-go/internal/xhttp"
	"github.com/courierkit/pathao-go/internal/xslog"
	go_json "github.com/goccy/go-json"
)

// IntegrationHeader must carry the integration secret on every response;
// the provider probes the callback URL for it before activating a
// subscription.
const IntegrationHeader = "X-Pathao-Merchant-Webhook-Integration-Secret"

// DefaultIntegrationSecret is the value the provider's webhook registration
// form pre-fills; override it with WithIntegrationSecret.
const DefaultIntegrationSecret = "f3992ecc-59da-4cbe-a049-a13da2018d51"

var _ http.Handler = (*Dispatcher)(nil)

// ServeHTTP adapts the dispatcher to net/http. Pipeline failures map to 400,
// anything escaping the pipeline itself to 500; both still carry the
// integration header.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set(IntegrationHeader, d.integrationSecret)

	defer func() {
		if rec := recover(); rec != nil {
			d.logger.ErrorContext(ctx, "webhook adapter panic", xslog.ErrorAny(rec))
			xhttp.WriteJSON(w, http.StatusInternalServerError, Result{
				Status:  StatusError,
				Message: "internal server error",
			})
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		xhttp.WriteJSON(w, http.StatusBadRequest, Result{
			Status:  StatusError,
			Message: "failed to read request body",
		})
		return
	}

	result := d.Handle(ctx, body, r.Header.Get(SignatureHeader))
	xhttp.WriteJSON(w, statusCode(result), result)
}

// Request is the minimal inbound surface a non-net/http host must expose.
type Request interface {
	// Header returns the first value for a case-insensitive header name,
	// or "" when absent.
	Header(name string) string
	Body() []byte
}

// ResponseWriter is the minimal response surface a non-net/http host must
// expose. Adapters for specific frameworks wrap their context in this.
type ResponseWriter interface {
	SetHeader(name, value string)
	WriteStatus(code int)
	WriteBody(body []byte) error
}

// Respond adapts the dispatcher to any host satisfying the two narrow
// interfaces above.
func (d *Dispatcher) Respond(ctx context.Context, req Request, w ResponseWriter) {
	w.SetHeader(IntegrationHeader, d.integrationSecret)

	defer func() {
		if rec := recover(); rec != nil {
			d.logger.ErrorContext(ctx, "webhook adapter panic", xslog.ErrorAny(rec))
			writeResult(w, http.StatusInternalServerError, Result{
				Status:  StatusError,
				Message: "internal server error",
			})
		}
	}()

	result := d.Handle(ctx, req.Body(), req.Header(SignatureHeader))
	writeResult(w, statusCode(result), result)
}

func writeResult(w ResponseWriter, code int, result Result) {
	body, err := go_json.Marshal(result)
	if err != nil {
		w.WriteStatus(http.StatusInternalServerError)
		return
	}
	w.SetHeader(xhttp.ContentType, "application/json")
	w.WriteStatus(code)
	_ = w.WriteBody(body)
}

func statusCode(result Result) int {
	if result.Status == StatusSuccess {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/courierkit/pathao-go/internal/xslog"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is what an inbound webhook cycle produces. Handle never fails to
// its caller; every pipeline error becomes an error-status Result.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Handler consumes a dispatched event. A returned error is redirected to the
// error handlers; it does not affect the HTTP acknowledgment.
type Handler func(ctx context.Context, event Event) error

// ErrorHandler consumes verification, parsing, and handler failures.
type ErrorHandler func(ctx context.Context, err error)

// Dispatcher runs the verify -> parse -> fan-out pipeline and owns the
// subscription registry. Registries are instance scoped; two dispatchers
// never share handlers.
type Dispatcher struct {
	secret            string
	integrationSecret string
	verify            VerifyFunc
	logger            *slog.Logger

	mu          sync.Mutex
	handlers    map[EventType][]Handler
	anyHandlers []Handler
	errHandlers []ErrorHandler
}

type DispatcherOption func(*Dispatcher)

// WithIntegrationSecret overrides the value echoed back in the
// IntegrationHeader of every response.
func WithIntegrationSecret(secret string) DispatcherOption {
	return func(d *Dispatcher) { d.integrationSecret = secret }
}

// WithVerifyFunc swaps the signature scheme.
func WithVerifyFunc(verify VerifyFunc) DispatcherOption {
	return func(d *Dispatcher) { d.verify = verify }
}

func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = logger }
}

func NewDispatcher(secret string, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		secret:            secret,
		integrationSecret: DefaultIntegrationSecret,
		verify:            Verify,
		logger:            slog.Default(),
		handlers:          make(map[EventType][]Handler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// On subscribes handler to one discriminator. Handlers fire in registration
// order, after any-webhook handlers.
func (d *Dispatcher) On(eventType EventType, handler Handler) *Dispatcher {
	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
	return d
}

// OnAny subscribes handler to every successfully parsed webhook.
func (d *Dispatcher) OnAny(handler Handler) *Dispatcher {
	d.mu.Lock()
	d.anyHandlers = append(d.anyHandlers, handler)
	d.mu.Unlock()
	return d
}

// OnError subscribes handler to pipeline and subscriber failures.
func (d *Dispatcher) OnError(handler ErrorHandler) *Dispatcher {
	d.mu.Lock()
	d.errHandlers = append(d.errHandlers, handler)
	d.mu.Unlock()
	return d
}

// Handle runs one inbound webhook through verification, parsing, and
// fan-out. Pipeline failures are converted into an error-status Result and
// emitted to the error handlers; subscriber errors and panics are routed
// there too and never reach the caller.
func (d *Dispatcher) Handle(ctx context.Context, body []byte, signature string) Result {
	if err := d.verify(signature, d.secret, body); err != nil {
		d.emitError(ctx, err)
		return Result{Status: StatusError, Message: err.Error()}
	}

	event, err := ParseEvent(body)
	if err != nil {
		d.emitError(ctx, err)
		return Result{Status: StatusError, Message: err.Error()}
	}

	d.emit(ctx, event)
	return Result{Status: StatusSuccess}
}

// emit fans the event out: any-webhook handlers first, then the handlers for
// its specific discriminator, each list in registration order.
func (d *Dispatcher) emit(ctx context.Context, event Event) {
	d.mu.Lock()
	anyHandlers := make([]Handler, len(d.anyHandlers))
	copy(anyHandlers, d.anyHandlers)
	specific := make([]Handler, len(d.handlers[event.Type()]))
	copy(specific, d.handlers[event.Type()])
	d.mu.Unlock()

	for _, handler := range anyHandlers {
		d.invoke(ctx, handler, event)
	}
	for _, handler := range specific {
		d.invoke(ctx, handler, event)
	}
}

func (d *Dispatcher) invoke(ctx context.Context, handler Handler, event Event) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.ErrorContext(ctx, "webhook handler panicked",
				xslog.WebhookEvent(string(event.Type())),
				xslog.ErrorAny(rec),
				xslog.Stack(),
			)
			d.emitError(ctx, fmt.Errorf("webhook handler panic: %v", rec))
		}
	}()

	if err := handler(ctx, event); err != nil {
		d.logger.WarnContext(ctx, "webhook handler failed",
			xslog.WebhookEvent(string(event.Type())),
			xslog.Error(err),
		)
		d.emitError(ctx, err)
	}
}

func (d *Dispatcher) emitError(ctx context.Context, err error) {
	d.mu.Lock()
	errHandlers := make([]ErrorHandler, len(d.errHandlers))
	copy(errHandlers, d.errHandlers)
	d.mu.Unlock()

	for _, handler := range errHandlers {
		handler(ctx, err)
	}
}

package webhook

import (
	"fmt"

	go_json "github.com/goccy/go-json"
)

// WebhookError reports a verification or payload-shape problem with an
// inbound notification. Its message is safe to echo back to the provider.
type WebhookError struct {
	Message string
}

func (e *WebhookError) Error() string { return e.Message }

var knownEvents = func() map[EventType]struct{} {
	m := make(map[EventType]struct{}, len(eventTypeOrder))
	for _, t := range eventTypeOrder {
		m[t] = struct{}{}
	}
	return m
}()

// ParseEvent classifies an inbound JSON payload into one of the known event
// variants. Variant-specific fields are not re-validated; the discriminator
// is trusted to match the shape, per the provider contract.
func ParseEvent(data []byte) (Event, error) {
	var fields map[string]go_json.RawMessage
	if err := go_json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, &WebhookError{Message: "webhook payload must be a JSON object"}
	}

	rawEvent, ok := fields["event"]
	if !ok {
		return nil, &WebhookError{Message: "webhook payload missing event field"}
	}

	var name string
	if err := go_json.Unmarshal(rawEvent, &name); err != nil {
		return nil, &WebhookError{Message: "webhook event field must be a string"}
	}

	eventType := EventType(name)
	if _, ok := knownEvents[eventType]; !ok {
		return nil, &WebhookError{Message: fmt.Sprintf("unknown webhook event: %s", name)}
	}

	if IsStoreType(eventType) {
		var e StoreEvent
		if err := go_json.Unmarshal(data, &e); err != nil {
			return nil, &WebhookError{Message: "malformed store webhook payload"}
		}
		return e, nil
	}

	var e OrderEvent
	if err := go_json.Unmarshal(data, &e); err != nil {
		return nil, &WebhookError{Message: "malformed order webhook payload"}
	}
	return e, nil
}

// IsOrderType reports whether t names an order lifecycle discriminator.
func IsOrderType(t EventType) bool {
	return len(t) > len(orderPrefix) && t[:len(orderPrefix)] == orderPrefix
}

// IsStoreType reports whether t names a store discriminator.
func IsStoreType(t EventType) bool {
	return len(t) > len(storePrefix) && t[:len(storePrefix)] == storePrefix
}

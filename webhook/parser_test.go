package webhook

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEventOrder(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"event": "order.delivered",
		"consignment_id": "DL251223ABCDEF",
		"merchant_order_id": "SO-1042",
		"store_id": 55,
		"delivery_fee": 83.46,
		"collected_amount": 1250,
		"updated_at": "2025-12-23 18:02:11",
		"timestamp": "2025-12-23T18:02:11+06:00"
	}`)

	event, err := ParseEvent(body)
	if err != nil {
		t.Fatalf("ParseEvent() error: %v", err)
	}

	order, ok := event.(OrderEvent)
	if !ok {
		t.Fatalf("ParseEvent() = %T, want OrderEvent", event)
	}

	want := OrderEvent{
		eventBase: eventBase{
			Event:     OrderDelivered,
			UpdatedAt: "2025-12-23 18:02:11",
			Timestamp: "2025-12-23T18:02:11+06:00",
		},
		ConsignmentID:   "DL251223ABCDEF",
		MerchantOrderID: "SO-1042",
		StoreID:         55,
		DeliveryFee:     83.46,
		CollectedAmount: 1250,
	}
	if diff := cmp.Diff(want, order, cmp.AllowUnexported(OrderEvent{})); diff != "" {
		t.Errorf("ParseEvent() mismatch (-want +got):\n%s", diff)
	}

	if !IsOrderEvent(event) {
		t.Error("IsOrderEvent() = false, want true")
	}
	if IsStoreEvent(event) {
		t.Error("IsStoreEvent() = true, want false")
	}
}

func TestParseEventStore(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"event": "store.updated",
		"store_id": 7,
		"store_name": "Banani Outlet",
		"store_address": "House 12, Road 11, Banani, Dhaka",
		"is_active": 1,
		"updated_at": "2025-12-23 10:00:00",
		"timestamp": "2025-12-23T10:00:00+06:00"
	}`)

	event, err := ParseEvent(body)
	if err != nil {
		t.Fatalf("ParseEvent() error: %v", err)
	}

	store, ok := event.(StoreEvent)
	if !ok {
		t.Fatalf("ParseEvent() = %T, want StoreEvent", event)
	}
	if store.StoreID != 7 || store.StoreName != "Banani Outlet" || store.IsActive != 1 {
		t.Errorf("unexpected store event: %+v", store)
	}

	if !IsStoreEvent(event) {
		t.Error("IsStoreEvent() = false, want true")
	}
	if IsOrderEvent(event) {
		t.Error("IsOrderEvent() = true, want false")
	}
}

func TestParseEventAllDiscriminators(t *testing.T) {
	t.Parallel()

	for _, eventType := range EventTypes() {
		body := []byte(`{"event": "` + string(eventType) + `"}`)
		event, err := ParseEvent(body)
		if err != nil {
			t.Errorf("ParseEvent(%s) error: %v", eventType, err)
			continue
		}
		if event.Type() != eventType {
			t.Errorf("ParseEvent(%s).Type() = %s", eventType, event.Type())
		}
	}
}

func TestParseEventIdempotent(t *testing.T) {
	t.Parallel()

	body := []byte(`{"event": "order.created", "consignment_id": "DL1", "store_id": 1}`)

	first, err := ParseEvent(body)
	if err != nil {
		t.Fatalf("first ParseEvent() error: %v", err)
	}
	second, err := ParseEvent(body)
	if err != nil {
		t.Fatalf("second ParseEvent() error: %v", err)
	}

	if diff := cmp.Diff(first, second, cmp.AllowUnexported(OrderEvent{})); diff != "" {
		t.Errorf("repeated parse mismatch (-first +second):\n%s", diff)
	}
}

func TestParseEventRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "null",
			body:    `null`,
			wantErr: "webhook payload must be a JSON object",
		},
		{
			name:    "array",
			body:    `[{"event": "order.created"}]`,
			wantErr: "webhook payload must be a JSON object",
		},
		{
			name:    "string",
			body:    `"order.created"`,
			wantErr: "webhook payload must be a JSON object",
		},
		{
			name:    "number",
			body:    `42`,
			wantErr: "webhook payload must be a JSON object",
		},
		{
			name:    "truncated",
			body:    `{"event": "order.cre`,
			wantErr: "webhook payload must be a JSON object",
		},
		{
			name:    "missing event",
			body:    `{"consignment_id": "DL1"}`,
			wantErr: "webhook payload missing event field",
		},
		{
			name:    "event not a string",
			body:    `{"event": 7}`,
			wantErr: "webhook event field must be a string",
		},
		{
			name:    "unknown discriminator",
			body:    `{"event": "order.teleported"}`,
			wantErr: "unknown webhook event: order.teleported",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseEvent([]byte(tt.body))
			var webhookErr *WebhookError
			if !errors.As(err, &webhookErr) {
				t.Fatalf("ParseEvent() error = %v, want *WebhookError", err)
			}
			if webhookErr.Message != tt.wantErr {
				t.Errorf("ParseEvent() error = %q, want %q", webhookErr.Message, tt.wantErr)
			}
		})
	}
}

func TestEventTypePredicates(t *testing.T) {
	t.Parallel()

	if !IsOrderType(OrderInTransit) {
		t.Error("IsOrderType(order.in-transit) = false")
	}
	if IsOrderType(StoreCreated) {
		t.Error("IsOrderType(store.created) = true")
	}
	if !IsStoreType(StoreUpdated) {
		t.Error("IsStoreType(store.updated) = false")
	}
	if IsStoreType(EventType("order.")) {
		t.Error(`IsStoreType("order.") = true`)
	}
}

func TestEventTypesCount(t *testing.T) {
	t.Parallel()

	if got := len(EventTypes()); got != 21 {
		t.Errorf("len(EventTypes()) = %d, want 21", got)
	}
}

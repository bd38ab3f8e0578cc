// Package webhook receives, verifies, and dispatches Pathao Courier webhook
// notifications.
package webhook

import "strings"

// EventType is the discriminator string carried in every webhook payload.
type EventType string

const (
	OrderCreated               EventType = "order.created"
	OrderUpdated               EventType = "order.updated"
	OrderPickupRequested       EventType = "order.pickup-requested"
	OrderAssignedForPickup     EventType = "order.assigned-for-pickup"
	OrderPicked                EventType = "order.picked"
	OrderPickupFailed          EventType = "order.pickup-failed"
	OrderPickupCancelled       EventType = "order.pickup-cancelled"
	OrderAtSortingHub          EventType = "order.at-the-sorting-hub"
	OrderInTransit             EventType = "order.in-transit"
	OrderReceivedAtLastMileHub EventType = "order.received-at-last-mile-hub"
	OrderAssignedForDelivery   EventType = "order.assigned-for-delivery"
	OrderDelivered             EventType = "order.delivered"
	OrderPartialDelivery       EventType = "order.partial-delivery"
	OrderReturned              EventType = "order.returned"
	OrderDeliveryFailed        EventType = "order.delivery-failed"
	OrderOnHold                EventType = "order.on-hold"
	OrderPaid                  EventType = "order.paid"
	OrderPaidReturn            EventType = "order.paid-return"
	OrderExchanged             EventType = "order.exchanged"
	StoreCreated               EventType = "store.created"
	StoreUpdated               EventType = "store.updated"
)

const (
	orderPrefix = "order."
	storePrefix = "store."
)

type Event interface {
	webhookEvent()
	Type() EventType
}

type eventBase struct {
	Event     EventType `json:"event"`
	UpdatedAt string    `json:"updated_at"`
	Timestamp string    `json:"timestamp"`
}

func (e eventBase) Type() EventType { return e.Event }

// OrderEvent covers every order.* discriminator. Which optional fields are
// populated depends on the discriminator; the provider omits the rest.
type OrderEvent struct {
	eventBase
	ConsignmentID   string  `json:"consignment_id"`
	MerchantOrderID string  `json:"merchant_order_id,omitempty"`
	StoreID         int     `json:"store_id"`
	DeliveryFee     float64 `json:"delivery_fee,omitempty"`
	CollectedAmount float64 `json:"collected_amount,omitempty"`
	Reason          string  `json:"reason,omitempty"`
	InvoiceID       string  `json:"invoice_id,omitempty"`
}

func (OrderEvent) webhookEvent() {}

// StoreEvent covers store.created and store.updated.
type StoreEvent struct {
	eventBase
	StoreID      int    `json:"store_id"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
	IsActive     int    `json:"is_active"`
}

func (StoreEvent) webhookEvent() {}

// IsOrderEvent reports whether e belongs to the order lifecycle family.
func IsOrderEvent(e Event) bool {
	return e != nil && strings.HasPrefix(string(e.Type()), orderPrefix)
}

// IsStoreEvent reports whether e belongs to the store family.
func IsStoreEvent(e Event) bool {
	return e != nil && strings.HasPrefix(string(e.Type()), storePrefix)
}

// EventTypes lists every discriminator the parser recognizes.
func EventTypes() []EventType {
	types := make([]EventType, 0, len(knownEvents))
	for _, t := range eventTypeOrder {
		types = append(types, t)
	}
	return types
}

var eventTypeOrder = []EventType{
	OrderCreated,
	OrderUpdated,
	OrderPickupRequested,
	OrderAssignedForPickup,
	OrderPicked,
	OrderPickupFailed,
	OrderPickupCancelled,
	OrderAtSortingHub,
	OrderInTransit,
	OrderReceivedAtLastMileHub,
	OrderAssignedForDelivery,
	OrderDelivered,
	OrderPartialDelivery,
	OrderReturned,
	OrderDeliveryFailed,
	OrderOnHold,
	OrderPaid,
	OrderPaidReturn,
	OrderExchanged,
	StoreCreated,
	StoreUpdated,
}

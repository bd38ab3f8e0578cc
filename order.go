package pathao

import (
	"context"
	"fmt"
	"net/http"
)

type CreateOrderRequest struct {
	StoreID            int          `json:"store_id"`
	MerchantOrderID    string       `json:"merchant_order_id,omitempty"`
	RecipientName      string       `json:"recipient_name"`
	RecipientPhone     string       `json:"recipient_phone"`
	RecipientAddress   string       `json:"recipient_address"`
	RecipientCity      int          `json:"recipient_city"`
	RecipientZone      int          `json:"recipient_zone"`
	RecipientArea      int          `json:"recipient_area,omitempty"`
	DeliveryType       DeliveryType `json:"delivery_type"`
	ItemType           ItemType     `json:"item_type"`
	SpecialInstruction string       `json:"special_instruction,omitempty"`
	ItemQuantity       int          `json:"item_quantity"`
	ItemWeight         float64      `json:"item_weight"`
	ItemDescription    string       `json:"item_description,omitempty"`
	AmountToCollect    float64      `json:"amount_to_collect"`
}

func (r CreateOrderRequest) validate() error {
	if err := validatePositive("store_id", r.StoreID); err != nil {
		return err
	}
	if err := validateLength("recipient_name", r.RecipientName, 3, 100); err != nil {
		return err
	}
	if err := validatePhone("recipient_phone", r.RecipientPhone); err != nil {
		return err
	}
	if err := validateLength("recipient_address", r.RecipientAddress, 10, 220); err != nil {
		return err
	}
	if err := validatePositive("recipient_city", r.RecipientCity); err != nil {
		return err
	}
	if err := validatePositive("recipient_zone", r.RecipientZone); err != nil {
		return err
	}
	if err := validateDeliveryType("delivery_type", r.DeliveryType); err != nil {
		return err
	}
	if err := validateItemType("item_type", r.ItemType); err != nil {
		return err
	}
	if err := validatePositive("item_quantity", r.ItemQuantity); err != nil {
		return err
	}
	if err := validateWeight("item_weight", r.ItemWeight); err != nil {
		return err
	}
	if r.AmountToCollect < 0 {
		return &ValidationError{Field: "amount_to_collect", Message: "must not be negative"}
	}
	return nil
}

type Order struct {
	ConsignmentID   string  `json:"consignment_id"`
	MerchantOrderID string  `json:"merchant_order_id"`
	OrderStatus     string  `json:"order_status"`
	DeliveryFee     float64 `json:"delivery_fee"`
}

type OrderInfo struct {
	ConsignmentID   string  `json:"consignment_id"`
	MerchantOrderID string  `json:"merchant_order_id"`
	OrderStatus     string  `json:"order_status"`
	OrderStatusSlug string  `json:"order_status_slug"`
	InvoiceID       string  `json:"invoice_id"`
	AmountToCollect float64 `json:"amount_to_collect"`
	UpdatedAt       string  `json:"updated_at"`
}

type orderService struct {
	client *Client
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	const route = "/orders"

	if err := req.validate(); err != nil {
		return nil, err
	}

	var resp envelope[Order]
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *orderService) CreateBulk(ctx context.Context, reqs []CreateOrderRequest) error {
	const route = "/orders/bulk"

	if len(reqs) == 0 {
		return &ValidationError{Field: "orders", Message: "must contain at least one order"}
	}
	for i, req := range reqs {
		if err := req.validate(); err != nil {
			return fmt.Errorf("order %d: %w", i, err)
		}
	}

	payload := struct {
		Orders []CreateOrderRequest `json:"orders"`
	}{Orders: reqs}

	var resp envelope[bool]
	return s.client.do(ctx, http.MethodPost, route, nil, payload, &resp)
}

func (s *orderService) Info(ctx context.Context, consignmentID string) (*OrderInfo, error) {
	if consignmentID == "" {
		return nil, &ValidationError{Field: "consignment_id", Message: "must not be empty"}
	}

	route := "/orders/" + consignmentID + "/info"

	var resp envelope[OrderInfo]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

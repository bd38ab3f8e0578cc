package pathao

import (
	"context"
	"net/http"
)

type PriceRequest struct {
	StoreID       int          `json:"store_id"`
	ItemType      ItemType     `json:"item_type"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	ItemWeight    float64      `json:"item_weight"`
	RecipientCity int          `json:"recipient_city"`
	RecipientZone int          `json:"recipient_zone"`
}

func (r PriceRequest) validate() error {
	if err := validatePositive("store_id", r.StoreID); err != nil {
		return err
	}
	if err := validateItemType("item_type", r.ItemType); err != nil {
		return err
	}
	if err := validateDeliveryType("delivery_type", r.DeliveryType); err != nil {
		return err
	}
	if err := validateWeight("item_weight", r.ItemWeight); err != nil {
		return err
	}
	if err := validatePositive("recipient_city", r.RecipientCity); err != nil {
		return err
	}
	return validatePositive("recipient_zone", r.RecipientZone)
}

type Price struct {
	Price          float64 `json:"price"`
	DiscountAmount float64 `json:"discount"`
	PromoDiscount  float64 `json:"promo_discount"`
	PlanID         int     `json:"plan_id"`
	CodEnabled     int     `json:"cod_enabled"`
	CodPercentage  float64 `json:"cod_percentage"`
	AdditionalCost float64 `json:"additional_charge"`
	FinalPrice     float64 `json:"final_price"`
}

type pricingService struct {
	client *Client
}

func (s *pricingService) Calculate(ctx context.Context, req PriceRequest) (*Price, error) {
	const route = "/merchant/price-plan"

	if err := req.validate(); err != nil {
		return nil, err
	}

	var resp envelope[Price]
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

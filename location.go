package pathao

import (
	"context"
	"fmt"
	"net/http"
)

type City struct {
	CityID   int    `json:"city_id"`
	CityName string `json:"city_name"`
}

type Zone struct {
	ZoneID   int    `json:"zone_id"`
	ZoneName string `json:"zone_name"`
}

type Area struct {
	AreaID                int    `json:"area_id"`
	AreaName              string `json:"area_name"`
	HomeDeliveryAvailable bool   `json:"home_delivery_available"`
	PickupAvailable       bool   `json:"pickup_available"`
}

type locationService struct {
	client *Client
}

func (s *locationService) Cities(ctx context.Context) ([]City, error) {
	const route = "/city-list"

	var resp envelope[struct {
		Data []City `json:"data"`
	}]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Data, nil
}

func (s *locationService) Zones(ctx context.Context, cityID int) ([]Zone, error) {
	if err := validatePositive("city_id", cityID); err != nil {
		return nil, err
	}

	route := fmt.Sprintf("/cities/%d/zone-list", cityID)

	var resp envelope[struct {
		Data []Zone `json:"data"`
	}]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Data, nil
}

func (s *locationService) Areas(ctx context.Context, zoneID int) ([]Area, error) {
	if err := validatePositive("zone_id", zoneID); err != nil {
		return nil, err
	}

	route := fmt.Sprintf("/zones/%d/area-list", zoneID)

	var resp envelope[struct {
		Data []Area `json:"data"`
	}]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Data, nil
}

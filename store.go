package pathao

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type CreateStoreRequest struct {
	Name             string `json:"name"`
	ContactName      string `json:"contact_name"`
	ContactNumber    string `json:"contact_number"`
	SecondaryContact string `json:"secondary_contact,omitempty"`
	Address          string `json:"address"`
	CityID           int    `json:"city_id"`
	ZoneID           int    `json:"zone_id"`
	AreaID           int    `json:"area_id"`
}

func (r CreateStoreRequest) validate() error {
	if err := validateLength("name", r.Name, 3, 100); err != nil {
		return err
	}
	if err := validateLength("contact_name", r.ContactName, 3, 100); err != nil {
		return err
	}
	if err := validatePhone("contact_number", r.ContactNumber); err != nil {
		return err
	}
	if err := validateLength("address", r.Address, 10, 220); err != nil {
		return err
	}
	if err := validatePositive("city_id", r.CityID); err != nil {
		return err
	}
	if err := validatePositive("zone_id", r.ZoneID); err != nil {
		return err
	}
	return validatePositive("area_id", r.AreaID)
}

type CreatedStore struct {
	StoreID   int    `json:"store_id"`
	StoreName string `json:"store_name"`
}

type Store struct {
	StoreID              int    `json:"store_id"`
	StoreName            string `json:"store_name"`
	StoreAddress         string `json:"store_address"`
	IsActive             int    `json:"is_active"`
	CityID               int    `json:"city_id"`
	ZoneID               int    `json:"zone_id"`
	HubID                int    `json:"hub_id"`
	IsDefaultStore       bool   `json:"is_default_store"`
	IsDefaultReturnStore bool   `json:"is_default_return_store"`
}

type ListParams struct {
	Page    int
	PerPage int
}

func (p *ListParams) query() url.Values {
	if p == nil {
		return nil
	}
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(p.PerPage))
	}
	return query
}

type storeService struct {
	client *Client
}

func (s *storeService) Create(ctx context.Context, req CreateStoreRequest) (*CreatedStore, error) {
	const route = "/stores"

	if err := req.validate(); err != nil {
		return nil, err
	}

	var resp envelope[CreatedStore]
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *storeService) List(ctx context.Context, params *ListParams) (*Page[Store], error) {
	const route = "/stores"

	var resp envelope[Page[Store]]
	if err := s.client.do(ctx, http.MethodGet, route, params.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

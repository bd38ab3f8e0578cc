package pathao

import "context"

type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (*CreatedStore, error)
	List(ctx context.Context, params *ListParams) (*Page[Store], error)
}

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*Order, error)
	CreateBulk(ctx context.Context, reqs []CreateOrderRequest) error
	Info(ctx context.Context, consignmentID string) (*OrderInfo, error)
}

type LocationService interface {
	Cities(ctx context.Context) ([]City, error)
	Zones(ctx context.Context, cityID int) ([]Zone, error)
	Areas(ctx context.Context, zoneID int) ([]Area, error)
}

type PricingService interface {
	Calculate(ctx context.Context, req PriceRequest) (*Price, error)
}

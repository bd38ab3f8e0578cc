package pathao

// DeliveryType selects the delivery window in hours.
type DeliveryType int

const (
	DeliveryTypeNormal   DeliveryType = 48
	DeliveryTypeOnDemand DeliveryType = 12
)

type ItemType int

const (
	ItemTypeDocument ItemType = 1
	ItemTypeParcel   ItemType = 2
)

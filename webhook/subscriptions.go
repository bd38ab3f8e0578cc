package webhook

// Per-discriminator convenience subscriptions. Each is sugar over On and
// returns the dispatcher for chaining.

func (d *Dispatcher) OnOrderCreated(h Handler) *Dispatcher { return d.On(OrderCreated, h) }

func (d *Dispatcher) OnOrderUpdated(h Handler) *Dispatcher { return d.On(OrderUpdated, h) }

func (d *Dispatcher) OnOrderPickupRequested(h Handler) *Dispatcher {
	return d.On(OrderPickupRequested, h)
}

func (d *Dispatcher) OnOrderAssignedForPickup(h Handler) *Dispatcher {
	return d.On(OrderAssignedForPickup, h)
}

func (d *Dispatcher) OnOrderPicked(h Handler) *Dispatcher { return d.On(OrderPicked, h) }

func (d *Dispatcher) OnOrderPickupFailed(h Handler) *Dispatcher { return d.On(OrderPickupFailed, h) }

func (d *Dispatcher) OnOrderPickupCancelled(h Handler) *Dispatcher {
	return d.On(OrderPickupCancelled, h)
}

func (d *Dispatcher) OnOrderAtSortingHub(h Handler) *Dispatcher { return d.On(OrderAtSortingHub, h) }

func (d *Dispatcher) OnOrderInTransit(h Handler) *Dispatcher { return d.On(OrderInTransit, h) }

func (d *Dispatcher) OnOrderReceivedAtLastMileHub(h Handler) *Dispatcher {
	return d.On(OrderReceivedAtLastMileHub, h)
}

func (d *Dispatcher) OnOrderAssignedForDelivery(h Handler) *Dispatcher {
	return d.On(OrderAssignedForDelivery, h)
}

func (d *Dispatcher) OnOrderDelivered(h Handler) *Dispatcher { return d.On(OrderDelivered, h) }

func (d *Dispatcher) OnOrderPartialDelivery(h Handler) *Dispatcher {
	return d.On(OrderPartialDelivery, h)
}

func (d *Dispatcher) OnOrderReturned(h Handler) *Dispatcher { return d.On(OrderReturned, h) }

func (d *Dispatcher) OnOrderDeliveryFailed(h Handler) *Dispatcher {
	return d.On(OrderDeliveryFailed, h)
}

func (d *Dispatcher) OnOrderOnHold(h Handler) *Dispatcher { return d.On(OrderOnHold, h) }

func (d *Dispatcher) OnOrderPaid(h Handler) *Dispatcher { return d.On(OrderPaid, h) }

func (d *Dispatcher) OnOrderPaidReturn(h Handler) *Dispatcher { return d.On(OrderPaidReturn, h) }

func (d *Dispatcher) OnOrderExchanged(h Handler) *Dispatcher { return d.On(OrderExchanged, h) }

func (d *Dispatcher) OnStoreCreated(h Handler) *Dispatcher { return d.On(StoreCreated, h) }

func (d *Dispatcher) OnStoreUpdated(h Handler) *Dispatcher { return d.On(StoreUpdated, h) }

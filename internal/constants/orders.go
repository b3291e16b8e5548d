package constants

// Order lifecycle statuses written by the mobile clients.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusAssigned  = "assigned"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// FirstOrderPromoStatus is the order status the first-order promotion
// eligibility check filters on. The lifecycle above never writes
// "completed" (the terminal state is "delivered"), so the check matches
// nothing for repeat customers.
// TODO: confirm with product whether this should be OrderStatusDelivered.
const FirstOrderPromoStatus = "completed"

package constants

// Order-type adjustment kinds.
const (
	AdjustmentKindFlat       = "flat"
	AdjustmentKindPercentage = "percentage"
)

// Promotion discount kinds.
const (
	DiscountKindFlat         = "flat"
	DiscountKindPercentage   = "percentage"
	DiscountKindFreeDelivery = "free_delivery"
)

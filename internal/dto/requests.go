package dto

type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Cost     float64 `json:"cost" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
}

type CreateStrategyRequest struct {
	Name               string  `json:"name" binding:"required"`
	Type               string  `json:"type" binding:"required,oneof=PERCENTAGE_DISCOUNT CRM_LOYALTY_POINTS MOBILE_PUSH_OFFER"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"gte=0,lte=100"`
	PointsPerPurchase  int     `json:"points_per_purchase" binding:"gte=0"`
	OfferMessage       string  `json:"offer_message"`
	IsActive           bool    `json:"is_active"`
}

type UpdateStrategyRequest struct {
	Name               *string  `json:"name"`
	DiscountPercentage *float64 `json:"discount_percentage" binding:"omitempty,gte=0,lte=100"`
	PointsPerPurchase  *int     `json:"points_per_purchase" binding:"omitempty,gte=0"`
	OfferMessage       *string  `json:"offer_message"`
	IsActive           *bool    `json:"is_active"`
}

type GenerateCustomersRequest struct {
	Count int `json:"count" binding:"omitempty,gte=1,lte=1000"`
}

type SimulateRequest struct {
	Days int `json:"days" binding:"omitempty,gte=1,lte=90"`
}

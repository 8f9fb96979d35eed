package model

import (
	"time"
)

// Persona tags. Each generated customer carries exactly one.
const (
	PersonaPriceSensitive = "PRICE_SENSITIVE"
	PersonaLoyaltyDriven  = "LOYALTY_DRIVEN"
	PersonaMobileFirst    = "MOBILE_FIRST"
	PersonaImpulseBuyer   = "IMPULSE_BUYER"
)

// Strategy kinds. A strategy is exactly one kind and carries the
// parameter for that kind; the other parameters stay zero-valued.
const (
	StrategyPercentageDiscount = "PERCENTAGE_DISCOUNT"
	StrategyLoyaltyPoints      = "CRM_LOYALTY_POINTS"
	StrategyMobilePushOffer    = "MOBILE_PUSH_OFFER"
)

const (
	PaymentCard   = "CARD"
	PaymentUPI    = "UPI"
	PaymentWallet = "WALLET"
	PaymentCrypto = "CRYPTO"
)

const (
	PaymentSuccess = "SUCCESS"
	PaymentFailed  = "FAILED"
	PaymentPending = "PENDING"
)

type Store struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Strategy struct {
	ID                 string    `json:"id"`
	StoreID            string    `json:"store_id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	PointsPerPurchase  int       `json:"points_per_purchase,omitempty"`
	OfferMessage       string    `json:"offer_message,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// Customer is an instantiated persona. The four psychological traits are
// on a 0-100 scale; visit frequency is visits per 30-day month.
type Customer struct {
	ID                 string    `json:"id"`
	StoreID            string    `json:"store_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Persona            string    `json:"persona"`
	PriceConsciousness int       `json:"price_consciousness"`
	LoyaltyTendency    int       `json:"loyalty_tendency"`
	MobilePref         int       `json:"mobile_pref"`
	Impulsiveness      int       `json:"impulsiveness"`
	AvgOrderValue      float64   `json:"avg_order_value"`
	VisitFrequency     int       `json:"visit_frequency"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// TransactionItem snapshots the product price at decision time.
type TransactionItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// StrategyImpact records how one active strategy influenced a purchase.
type StrategyImpact struct {
	StrategyID string `json:"strategy_id"`
	Impact     string `json:"impact"`
}

type Transaction struct {
	ID                  string            `json:"id"`
	StoreID             string            `json:"store_id"`
	CustomerID          string            `json:"customer_id"`
	CustomerName        string            `json:"customer_name,omitempty"`
	CustomerPersona     string            `json:"customer_persona,omitempty"`
	Items               []TransactionItem `json:"items"`
	TotalAmount         float64           `json:"total_amount"`
	DiscountApplied     float64           `json:"discount_applied"`
	FinalAmount         float64           `json:"final_amount"`
	PaymentMethod       string            `json:"payment_method"`
	PaymentStatus       string            `json:"payment_status"`
	AppliedStrategies   []StrategyImpact  `json:"applied_strategies,omitempty"`
	LoyaltyPointsEarned int               `json:"loyalty_points_earned"`
	CreatedAt           time.Time         `json:"created_at"`
}

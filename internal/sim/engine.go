package sim

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizpulse/storesim/internal/model"
)

const (
	DefaultSimulationDays = 7

	paymentSuccessRate = 0.95
	daysPerMonth       = 30
)

var (
	ErrNoActiveCustomers = errors.New("no active customers for store")
	ErrNoProducts        = errors.New("no products for store")
)

// StrategyStats tracks how a single strategy performed across a run.
type StrategyStats struct {
	TriggeredTransactions int     `json:"triggered_transactions"`
	Revenue               float64 `json:"revenue"`
}

// Summary is the aggregate outcome of one simulation run. Revenue counts
// successful payments only.
type Summary struct {
	TotalTransactions      int                      `json:"total_transactions"`
	SuccessfulTransactions int                      `json:"successful_transactions"`
	FailedTransactions     int                      `json:"failed_transactions"`
	TotalRevenue           float64                  `json:"total_revenue"`
	StrategyEffectiveness  map[string]StrategyStats `json:"strategy_effectiveness"`
}

// Engine runs the multi-day visit loop. The random source and clock are
// injected so runs are reproducible under test. Each run draws from its
// own child source; the parent is the only shared state, so concurrent
// runs are safe.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, now: time.Now}
}

// NewEngineAt pins the engine's notion of "now"; the last simulated day
// lands on it.
func NewEngineAt(rng *rand.Rand, now func() time.Time) *Engine {
	return &Engine{rng: rng, now: now}
}

// childRNG seeds an independent source for a single run.
func (e *Engine) childRNG() *rand.Rand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return rand.New(rand.NewSource(e.rng.Int63()))
}

// Run simulates the given number of days for every active customer and
// returns the generated transactions with a run summary. Customers and
// strategies are expected to be pre-filtered to active ones; strategies
// may be empty. Nothing is persisted here.
//
// Each day, each customer rolls a visit with probability
// visitFrequency/30. On a visit the behavior model decides the purchase;
// a decision with no selected products produces no transaction.
// Timestamps are back-dated so day 0 lands days-1 days before now and
// the final day lands on now.
func (e *Engine) Run(storeID string, customers []model.Customer, products []model.Product, strategies []model.Strategy, days int) ([]model.Transaction, Summary, error) {
	summary := Summary{StrategyEffectiveness: make(map[string]StrategyStats)}

	if len(customers) == 0 {
		return nil, summary, ErrNoActiveCustomers
	}
	if len(products) == 0 {
		return nil, summary, ErrNoProducts
	}
	if days < 1 {
		days = DefaultSimulationDays
	}

	now := e.now()
	rng := e.childRNG()
	var transactions []model.Transaction

	for day := 0; day < days; day++ {
		for _, customer := range customers {
			visitChance := float64(customer.VisitFrequency) / daysPerMonth
			if rng.Float64() >= visitChance {
				continue
			}

			decision := Decide(rng, customer, products, strategies)
			if !decision.WillBuy || len(decision.Products) == 0 {
				continue
			}

			txn := buildTransaction(rng, storeID, customer, decision, strategies)
			txn.CreatedAt = now.AddDate(0, 0, -(days - day - 1))
			transactions = append(transactions, txn)

			summary.TotalTransactions++
			if txn.PaymentStatus == model.PaymentSuccess {
				summary.SuccessfulTransactions++
				summary.TotalRevenue += txn.FinalAmount
			} else {
				summary.FailedTransactions++
			}

			for _, impact := range txn.AppliedStrategies {
				stats := summary.StrategyEffectiveness[impact.StrategyID]
				stats.TriggeredTransactions++
				if txn.PaymentStatus == model.PaymentSuccess {
					stats.Revenue += txn.FinalAmount
				}
				summary.StrategyEffectiveness[impact.StrategyID] = stats
			}
		}
	}

	return transactions, summary, nil
}

func buildTransaction(rng *rand.Rand, storeID string, customer model.Customer, decision Decision, strategies []model.Strategy) model.Transaction {
	items := make([]model.TransactionItem, len(decision.Products))
	var total float64
	for i, sp := range decision.Products {
		items[i] = model.TransactionItem{
			ProductID:   sp.Product.ID,
			ProductName: sp.Product.Name,
			Category:    sp.Product.Category,
			Quantity:    sp.Quantity,
			Price:       sp.Price,
		}
		total += sp.Price * float64(sp.Quantity)
	}

	// First matching strategy of each kind wins; later ones of the same
	// kind are deliberately ignored.
	var discount float64
	if s, ok := firstOfType(strategies, model.StrategyPercentageDiscount); ok {
		discount = total * s.DiscountPercentage / 100
	}

	var loyaltyPoints int
	if s, ok := firstOfType(strategies, model.StrategyLoyaltyPoints); ok {
		loyaltyPoints = s.PointsPerPurchase
	}

	status := model.PaymentFailed
	if rng.Float64() < paymentSuccessRate {
		status = model.PaymentSuccess
	}
	if status != model.PaymentSuccess {
		loyaltyPoints = 0
	}

	return model.Transaction{
		ID:                  uuid.NewString(),
		StoreID:             storeID,
		CustomerID:          customer.ID,
		CustomerName:        customer.Name,
		CustomerPersona:     customer.Persona,
		Items:               items,
		TotalAmount:         total,
		DiscountApplied:     discount,
		FinalAmount:         total - discount,
		PaymentMethod:       decision.PaymentMethod,
		PaymentStatus:       status,
		AppliedStrategies:   decision.StrategyImpacts,
		LoyaltyPointsEarned: loyaltyPoints,
	}
}

func firstOfType(strategies []model.Strategy, strategyType string) (model.Strategy, bool) {
	for _, s := range strategies {
		if s.Type == strategyType {
			return s, true
		}
	}
	return model.Strategy{}, false
}

package service

import (
	"context"
	"math"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
	"github.com/bizpulse/storesim/internal/sim"
)

type CustomerService struct {
	stores    *repository.StoreRepository
	customers *repository.CustomerRepository
	generator *sim.Generator
}

func NewCustomerService(stores *repository.StoreRepository, customers *repository.CustomerRepository, generator *sim.Generator) *CustomerService {
	return &CustomerService{stores: stores, customers: customers, generator: generator}
}

// Generate replaces the store's population with count freshly sampled
// customers (full regenerate, not additive).
func (s *CustomerService) Generate(ctx context.Context, storeID string, count int) ([]model.Customer, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return nil, err
	}

	customers := s.generator.Customers(storeID, count)
	if err := s.customers.ReplaceForStore(ctx, storeID, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) List(ctx context.Context, storeID string, p dto.PaginationParams) ([]model.Customer, int, error) {
	return s.customers.ListByStore(ctx, storeID, p.PageSize, p.Offset)
}

// GroupByPersona buckets a customer page for display.
func GroupByPersona(customers []model.Customer) map[string][]model.Customer {
	grouped := make(map[string][]model.Customer)
	for _, c := range customers {
		grouped[c.Persona] = append(grouped[c.Persona], c)
	}
	return grouped
}

type TraitAverages struct {
	PriceConsciousness int `json:"price_consciousness"`
	LoyaltyTendency    int `json:"loyalty_tendency"`
	MobilePref         int `json:"mobile_pref"`
	Impulsiveness      int `json:"impulsiveness"`
}

type CustomerAnalytics struct {
	TotalCustomers        int            `json:"total_customers"`
	PersonaDistribution   map[string]int `json:"persona_distribution"`
	AverageTraits         TraitAverages  `json:"average_traits"`
	TotalPotentialRevenue float64        `json:"total_potential_revenue"`
}

func (s *CustomerService) Analytics(ctx context.Context, storeID string) (CustomerAnalytics, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return CustomerAnalytics{}, err
	}

	customers, err := s.customers.ListAll(ctx, storeID)
	if err != nil {
		return CustomerAnalytics{}, err
	}
	return AggregateCustomers(customers), nil
}

// AggregateCustomers reduces a population into persona distribution,
// average traits and potential monthly revenue
// (avg order value x visit frequency per customer).
func AggregateCustomers(customers []model.Customer) CustomerAnalytics {
	analytics := CustomerAnalytics{
		TotalCustomers:      len(customers),
		PersonaDistribution: make(map[string]int),
	}

	var price, loyalty, mobile, impulse int
	for _, c := range customers {
		analytics.PersonaDistribution[c.Persona]++
		price += c.PriceConsciousness
		loyalty += c.LoyaltyTendency
		mobile += c.MobilePref
		impulse += c.Impulsiveness
		analytics.TotalPotentialRevenue += c.AvgOrderValue * float64(c.VisitFrequency)
	}

	if n := len(customers); n > 0 {
		analytics.AverageTraits = TraitAverages{
			PriceConsciousness: int(math.Round(float64(price) / float64(n))),
			LoyaltyTendency:    int(math.Round(float64(loyalty) / float64(n))),
			MobilePref:         int(math.Round(float64(mobile) / float64(n))),
			Impulsiveness:      int(math.Round(float64(impulse) / float64(n))),
		}
	}

	return analytics
}

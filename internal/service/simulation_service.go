package service

import (
	"context"
	"fmt"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
	"github.com/bizpulse/storesim/internal/sim"
)

type SimulationService struct {
	stores       *repository.StoreRepository
	customers    *repository.CustomerRepository
	products     *repository.ProductRepository
	strategies   *repository.StrategyRepository
	transactions *repository.TransactionRepository
	engine       *sim.Engine
}

func NewSimulationService(
	stores *repository.StoreRepository,
	customers *repository.CustomerRepository,
	products *repository.ProductRepository,
	strategies *repository.StrategyRepository,
	transactions *repository.TransactionRepository,
	engine *sim.Engine,
) *SimulationService {
	return &SimulationService{
		stores:       stores,
		customers:    customers,
		products:     products,
		strategies:   strategies,
		transactions: transactions,
		engine:       engine,
	}
}

// Simulate runs the engine over the store's active customers, full
// catalog and active strategies, then replaces the store's transaction
// history with the new batch. The engine's precondition errors
// (sim.ErrNoActiveCustomers, sim.ErrNoProducts) pass through untouched
// and leave existing transactions in place.
func (s *SimulationService) Simulate(ctx context.Context, storeID string, days int) ([]model.Transaction, sim.Summary, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return nil, sim.Summary{}, err
	}

	customers, err := s.customers.ListActive(ctx, storeID)
	if err != nil {
		return nil, sim.Summary{}, fmt.Errorf("load customers: %w", err)
	}
	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, sim.Summary{}, fmt.Errorf("load products: %w", err)
	}
	strategies, err := s.strategies.ListByStore(ctx, storeID, true)
	if err != nil {
		return nil, sim.Summary{}, fmt.Errorf("load strategies: %w", err)
	}

	txns, summary, err := s.engine.Run(storeID, customers, products, strategies, days)
	if err != nil {
		return nil, sim.Summary{}, err
	}

	if err := s.transactions.ReplaceForStore(ctx, storeID, txns); err != nil {
		return nil, sim.Summary{}, fmt.Errorf("persist transactions: %w", err)
	}

	return txns, summary, nil
}

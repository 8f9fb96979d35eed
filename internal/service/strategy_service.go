package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizpulse/storesim/internal/dto"
	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
)

type StrategyService struct {
	stores     *repository.StoreRepository
	strategies *repository.StrategyRepository
}

func NewStrategyService(stores *repository.StoreRepository, strategies *repository.StrategyRepository) *StrategyService {
	return &StrategyService{stores: stores, strategies: strategies}
}

func (s *StrategyService) Create(ctx context.Context, storeID string, req *dto.CreateStrategyRequest) (*model.Strategy, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return nil, err
	}

	strategy := &model.Strategy{
		ID:                 uuid.NewString(),
		StoreID:            storeID,
		Name:               req.Name,
		Type:               req.Type,
		DiscountPercentage: req.DiscountPercentage,
		PointsPerPurchase:  req.PointsPerPurchase,
		OfferMessage:       req.OfferMessage,
		IsActive:           req.IsActive,
	}
	if err := s.strategies.Insert(ctx, strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

func (s *StrategyService) List(ctx context.Context, storeID string) ([]model.Strategy, error) {
	return s.strategies.ListByStore(ctx, storeID, false)
}

// Update patches the mutable fields of a strategy; nil request fields
// keep their current value. The kind is immutable after creation.
func (s *StrategyService) Update(ctx context.Context, storeID, id string, req *dto.UpdateStrategyRequest) (*model.Strategy, error) {
	strategy, err := s.strategies.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		strategy.Name = *req.Name
	}
	if req.DiscountPercentage != nil {
		strategy.DiscountPercentage = *req.DiscountPercentage
	}
	if req.PointsPerPurchase != nil {
		strategy.PointsPerPurchase = *req.PointsPerPurchase
	}
	if req.OfferMessage != nil {
		strategy.OfferMessage = *req.OfferMessage
	}
	if req.IsActive != nil {
		strategy.IsActive = *req.IsActive
	}

	if err := s.strategies.Update(ctx, strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

func (s *StrategyService) Delete(ctx context.Context, storeID, id string) (bool, error) {
	return s.strategies.Delete(ctx, storeID, id)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
)

type StoreService struct {
	stores *repository.StoreRepository
}

func NewStoreService(stores *repository.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

func (s *StoreService) Create(ctx context.Context, name, description string) (*model.Store, error) {
	store := &model.Store{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	if err := s.stores.Insert(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Get(ctx context.Context, id string) (*model.Store, error) {
	return s.stores.Get(ctx, id)
}

func (s *StoreService) Delete(ctx context.Context, id string) (bool, error) {
	return s.stores.Delete(ctx, id)
}

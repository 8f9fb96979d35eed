package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
)

type ProductService struct {
	stores   *repository.StoreRepository
	products *repository.ProductRepository
}

func NewProductService(stores *repository.StoreRepository, products *repository.ProductRepository) *ProductService {
	return &ProductService{stores: stores, products: products}
}

func (s *ProductService) Add(ctx context.Context, storeID, name string, price, cost float64, category string) (*model.Product, error) {
	if cost >= price {
		return nil, &validationErr{field: "cost", message: "cost must be less than the selling price"}
	}

	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:       uuid.NewString(),
		StoreID:  storeID,
		Name:     name,
		Price:    price,
		Cost:     cost,
		Category: category,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, storeID string) ([]model.Product, error) {
	return s.products.ListByStore(ctx, storeID)
}

func (s *ProductService) Delete(ctx context.Context, storeID, id string) (bool, error) {
	return s.products.Delete(ctx, storeID, id)
}

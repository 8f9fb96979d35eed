package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizpulse/storesim/internal/model"
)

type StrategyRepository struct {
	pool *pgxpool.Pool
}

func NewStrategyRepository(pool *pgxpool.Pool) *StrategyRepository {
	return &StrategyRepository{pool: pool}
}

func (r *StrategyRepository) Insert(ctx context.Context, s *model.Strategy) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO strategies (id, store_id, name, type, discount_percentage, points_per_purchase, offer_message, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		s.ID, s.StoreID, s.Name, s.Type, s.DiscountPercentage, s.PointsPerPurchase, s.OfferMessage, s.IsActive,
	).Scan(&s.CreatedAt)
}

func (r *StrategyRepository) Get(ctx context.Context, storeID, id string) (*model.Strategy, error) {
	var s model.Strategy
	err := r.pool.QueryRow(ctx,
		`SELECT id, store_id, name, type, discount_percentage, points_per_purchase, offer_message, is_active, created_at
		FROM strategies WHERE id = $1 AND store_id = $2`,
		id, storeID,
	).Scan(&s.ID, &s.StoreID, &s.Name, &s.Type, &s.DiscountPercentage, &s.PointsPerPurchase, &s.OfferMessage, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StrategyRepository) Update(ctx context.Context, s *model.Strategy) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE strategies
		SET name = $3, type = $4, discount_percentage = $5, points_per_purchase = $6, offer_message = $7, is_active = $8
		WHERE id = $1 AND store_id = $2`,
		s.ID, s.StoreID, s.Name, s.Type, s.DiscountPercentage, s.PointsPerPurchase, s.OfferMessage, s.IsActive,
	)
	return err
}

func (r *StrategyRepository) Delete(ctx context.Context, storeID, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM strategies WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *StrategyRepository) ListByStore(ctx context.Context, storeID string, activeOnly bool) ([]model.Strategy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, name, type, discount_percentage, points_per_purchase, offer_message, is_active, created_at
		FROM strategies
		WHERE store_id = $1 AND ($2 = false OR is_active)
		ORDER BY created_at`,
		storeID, activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("query strategies: %w", err)
	}
	defer rows.Close()

	var strategies []model.Strategy
	for rows.Next() {
		var s model.Strategy
		err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Type, &s.DiscountPercentage,
			&s.PointsPerPurchase, &s.OfferMessage, &s.IsActive, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan strategy: %w", err)
		}
		strategies = append(strategies, s)
	}
	return strategies, rows.Err()
}

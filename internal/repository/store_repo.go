package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizpulse/storesim/internal/model"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Insert(ctx context.Context, store *model.Store) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO stores (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		store.ID, store.Name, store.Description,
	).Scan(&store.CreatedAt)
}

func (r *StoreRepository) Get(ctx context.Context, id string) (*model.Store, error) {
	var store model.Store
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM stores WHERE id = $1`,
		id,
	).Scan(&store.ID, &store.Name, &store.Description, &store.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// Delete removes the store; products, strategies, customers and
// transactions cascade via foreign keys.
func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

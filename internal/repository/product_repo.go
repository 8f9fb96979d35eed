package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizpulse/storesim/internal/model"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Insert(ctx context.Context, product *model.Product) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO products (id, store_id, name, price, cost, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		product.ID, product.StoreID, product.Name, product.Price, product.Cost, product.Category,
	).Scan(&product.CreatedAt)
}

func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, name, price, cost, category, created_at
		FROM products WHERE store_id = $1 ORDER BY created_at`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Cost, &p.Category, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Delete(ctx context.Context, storeID, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

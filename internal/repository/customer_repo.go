package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizpulse/storesim/internal/model"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// ReplaceForStore discards the store's existing population and inserts
// the new one. Clear and insert run in one SQL transaction so a failure
// never leaves the store half-populated.
func (r *CustomerRepository) ReplaceForStore(ctx context.Context, storeID string, customers []model.Customer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace customers: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM customers WHERE store_id = $1`, storeID); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}

	batch := &pgx.Batch{}
	for _, c := range customers {
		batch.Queue(
			`INSERT INTO customers (id, store_id, name, email, persona, price_consciousness, loyalty_tendency, mobile_pref, impulsiveness, avg_order_value, visit_frequency, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.ID, c.StoreID, c.Name, c.Email, c.Persona, c.PriceConsciousness,
			c.LoyaltyTendency, c.MobilePref, c.Impulsiveness, c.AvgOrderValue,
			c.VisitFrequency, c.IsActive,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range customers {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("insert customer %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *CustomerRepository) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]model.Customer, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE store_id = $1`, storeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, name, email, persona, price_consciousness, loyalty_tendency, mobile_pref, impulsiveness, avg_order_value, visit_frequency, is_active, created_at
		FROM customers WHERE store_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`,
		storeID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerRepository) ListActive(ctx context.Context, storeID string) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, name, email, persona, price_consciousness, loyalty_tendency, mobile_pref, impulsiveness, avg_order_value, visit_frequency, is_active, created_at
		FROM customers WHERE store_id = $1 AND is_active
		ORDER BY created_at, id`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query active customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func (r *CustomerRepository) ListAll(ctx context.Context, storeID string) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, store_id, name, email, persona, price_consciousness, loyalty_tendency, mobile_pref, impulsiveness, avg_order_value, visit_frequency, is_active, created_at
		FROM customers WHERE store_id = $1
		ORDER BY created_at, id`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func scanCustomers(rows pgx.Rows) ([]model.Customer, error) {
	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.Persona,
			&c.PriceConsciousness, &c.LoyaltyTendency, &c.MobilePref, &c.Impulsiveness,
			&c.AvgOrderValue, &c.VisitFrequency, &c.IsActive, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

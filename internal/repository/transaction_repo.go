package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizpulse/storesim/internal/model"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// ReplaceForStore wipes the store's previous simulation output and bulk
// inserts the new batch, all inside one SQL transaction. A failure at any
// point rolls back to the pre-run state.
func (r *TransactionRepository) ReplaceForStore(ctx context.Context, storeID string, txns []model.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace transactions: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE store_id = $1`, storeID); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(
			`INSERT INTO transactions (id, store_id, customer_id, total_amount, discount_applied, final_amount, payment_method, payment_status, loyalty_points_earned, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			txn.ID, txn.StoreID, txn.CustomerID, txn.TotalAmount, txn.DiscountApplied,
			txn.FinalAmount, txn.PaymentMethod, txn.PaymentStatus, txn.LoyaltyPointsEarned, txn.CreatedAt,
		)
		for _, item := range txn.Items {
			batch.Queue(
				`INSERT INTO transaction_items (transaction_id, product_id, quantity, price)
				VALUES ($1, $2, $3, $4)`,
				txn.ID, item.ProductID, item.Quantity, item.Price,
			)
		}
		for _, impact := range txn.AppliedStrategies {
			batch.Queue(
				`INSERT INTO transaction_strategies (transaction_id, strategy_id, impact)
				VALUES ($1, $2, $3)`,
				txn.ID, impact.StrategyID, impact.Impact,
			)
		}
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("insert transaction batch item %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

// ListByStore returns the store's transactions newest first, with
// customer identity, line items and strategy impacts resolved.
func (r *TransactionRepository) ListByStore(ctx context.Context, storeID string) ([]model.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.store_id, t.customer_id, c.name, c.persona,
			t.total_amount, t.discount_applied, t.final_amount,
			t.payment_method, t.payment_status, t.loyalty_points_earned, t.created_at
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.store_id = $1
		ORDER BY t.created_at DESC, t.id`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	index := make(map[string]int)
	for rows.Next() {
		var t model.Transaction
		err := rows.Scan(&t.ID, &t.StoreID, &t.CustomerID, &t.CustomerName, &t.CustomerPersona,
			&t.TotalAmount, &t.DiscountApplied, &t.FinalAmount,
			&t.PaymentMethod, &t.PaymentStatus, &t.LoyaltyPointsEarned, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		index[t.ID] = len(txns)
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, nil
	}

	if err := r.attachItems(ctx, storeID, txns, index); err != nil {
		return nil, err
	}
	if err := r.attachStrategies(ctx, storeID, txns, index); err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *TransactionRepository) attachItems(ctx context.Context, storeID string, txns []model.Transaction, index map[string]int) error {
	rows, err := r.pool.Query(ctx,
		`SELECT i.transaction_id, i.product_id, p.name, p.category, i.quantity, i.price
		FROM transaction_items i
		JOIN transactions t ON t.id = i.transaction_id
		JOIN products p ON p.id = i.product_id
		WHERE t.store_id = $1
		ORDER BY i.id`,
		storeID,
	)
	if err != nil {
		return fmt.Errorf("query transaction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txnID string
		var item model.TransactionItem
		if err := rows.Scan(&txnID, &item.ProductID, &item.ProductName, &item.Category, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("scan transaction item: %w", err)
		}
		if i, ok := index[txnID]; ok {
			txns[i].Items = append(txns[i].Items, item)
		}
	}
	return rows.Err()
}

func (r *TransactionRepository) attachStrategies(ctx context.Context, storeID string, txns []model.Transaction, index map[string]int) error {
	rows, err := r.pool.Query(ctx,
		`SELECT s.transaction_id, s.strategy_id, s.impact
		FROM transaction_strategies s
		JOIN transactions t ON t.id = s.transaction_id
		WHERE t.store_id = $1
		ORDER BY s.id`,
		storeID,
	)
	if err != nil {
		return fmt.Errorf("query transaction strategies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txnID string
		var impact model.StrategyImpact
		if err := rows.Scan(&txnID, &impact.StrategyID, &impact.Impact); err != nil {
			return fmt.Errorf("scan transaction strategy: %w", err)
		}
		if i, ok := index[txnID]; ok {
			txns[i].AppliedStrategies = append(txns[i].AppliedStrategies, impact)
		}
	}
	return rows.Err()
}

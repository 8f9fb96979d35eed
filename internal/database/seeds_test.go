package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// Tests run from package dir; point to project-root migrations
	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Skip("no database available")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Skip("no database available")
	}

	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))

	ctx := context.Background()

	t.Run("seed produces the demo store", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, pool))

		var storeCount int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM stores").Scan(&storeCount))
		assert.Equal(t, 1, storeCount)

		var productCount int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE store_id = $1", DemoStoreID).Scan(&productCount))
		assert.Equal(t, len(demoProducts), productCount)

		var strategyCount int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM strategies WHERE store_id = $1", DemoStoreID).Scan(&strategyCount))
		assert.Equal(t, len(demoStrategies), strategyCount)

		var customerCount int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers WHERE store_id = $1 AND is_active", DemoStoreID).Scan(&customerCount))
		assert.Equal(t, demoCustomerCount, customerCount)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, pool))

		var storeCount int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM stores").Scan(&storeCount))
		assert.Equal(t, 1, storeCount, "re-seeding must not duplicate data")
	})
}

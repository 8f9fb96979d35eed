package database

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/sim"
)

// DemoStoreID is the fixed identity of the seeded demo store.
const DemoStoreID = "00000000-0000-0000-0000-000000000001"

const demoCustomerCount = 20

var demoProducts = []struct {
	Name     string
	Price    float64
	Cost     float64
	Category string
}{
	{"Wireless Earbuds", 49.99, 22.00, "Electronics"},
	{"Phone Case", 14.99, 4.50, "Accessories"},
	{"Smart Watch", 89.99, 48.00, "Electronics"},
	{"Water Bottle", 19.99, 6.00, "Lifestyle"},
	{"Desk Lamp", 34.99, 15.50, "Home"},
	{"Notebook Set", 9.99, 2.80, "Stationery"},
	{"Bluetooth Speaker", 59.99, 28.00, "Electronics"},
	{"Tote Bag", 24.99, 8.00, "Lifestyle"},
}

var demoStrategies = []model.Strategy{
	{Name: "Launch Discount", Type: model.StrategyPercentageDiscount, DiscountPercentage: 10, IsActive: true},
	{Name: "Rewards Club", Type: model.StrategyLoyaltyPoints, PointsPerPurchase: 25, IsActive: true},
	{Name: "App Flash Sale", Type: model.StrategyMobilePushOffer, OfferMessage: "Today only: app-exclusive deals!", IsActive: false},
}

// SeedData creates a demo store with a catalog, the three strategy kinds
// and a generated customer population. Safe to call repeatedly; it skips
// when data already exists. The fixed seed keeps demo populations stable
// across rebuilds.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM stores").Scan(&count); err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"INSERT INTO stores (id, name, description) VALUES ($1, $2, $3)",
		DemoStoreID, "Demo Outfitters", "Seeded demo store for exploring the simulator")
	if err != nil {
		return fmt.Errorf("insert demo store: %w", err)
	}

	for _, p := range demoProducts {
		_, err := tx.Exec(ctx,
			"INSERT INTO products (id, store_id, name, price, cost, category) VALUES ($1, $2, $3, $4, $5, $6)",
			uuid.NewString(), DemoStoreID, p.Name, p.Price, p.Cost, p.Category)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}
	log.Info().Int("count", len(demoProducts)).Msg("inserted demo products")

	for _, s := range demoStrategies {
		_, err := tx.Exec(ctx,
			`INSERT INTO strategies (id, store_id, name, type, discount_percentage, points_per_purchase, offer_message, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), DemoStoreID, s.Name, s.Type, s.DiscountPercentage, s.PointsPerPurchase, s.OfferMessage, s.IsActive)
		if err != nil {
			return fmt.Errorf("insert strategy %s: %w", s.Name, err)
		}
	}
	log.Info().Int("count", len(demoStrategies)).Msg("inserted demo strategies")

	generator := sim.NewGenerator(rand.New(rand.NewSource(42)))
	for _, c := range generator.Customers(DemoStoreID, demoCustomerCount) {
		_, err := tx.Exec(ctx,
			`INSERT INTO customers (id, store_id, name, email, persona, price_consciousness, loyalty_tendency, mobile_pref, impulsiveness, avg_order_value, visit_frequency, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			c.ID, c.StoreID, c.Name, c.Email, c.Persona, c.PriceConsciousness,
			c.LoyaltyTendency, c.MobilePref, c.Impulsiveness, c.AvgOrderValue,
			c.VisitFrequency, c.IsActive)
		if err != nil {
			return fmt.Errorf("insert customer %s: %w", c.Name, err)
		}
	}
	log.Info().Int("count", demoCustomerCount).Msg("inserted demo customers")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Str("store_id", DemoStoreID).Msg("seed data generation complete")
	return nil
}

package sim

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/storesim/internal/model"
)

func TestGenerator_Customers(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	t.Run("traits stay clamped for every draw", func(t *testing.T) {
		customers := g.Customers("store-1", 1000)
		require.Len(t, customers, 1000)

		for _, c := range customers {
			assert.GreaterOrEqual(t, c.PriceConsciousness, 0)
			assert.LessOrEqual(t, c.PriceConsciousness, 100)
			assert.GreaterOrEqual(t, c.LoyaltyTendency, 0)
			assert.LessOrEqual(t, c.LoyaltyTendency, 100)
			assert.GreaterOrEqual(t, c.MobilePref, 0)
			assert.LessOrEqual(t, c.MobilePref, 100)
			assert.GreaterOrEqual(t, c.Impulsiveness, 0)
			assert.LessOrEqual(t, c.Impulsiveness, 100)
			assert.GreaterOrEqual(t, c.AvgOrderValue, 0.0)
			assert.GreaterOrEqual(t, c.VisitFrequency, 1, "visit frequency is floored at 1")
		}
	})

	t.Run("variation stays inside the persona window", func(t *testing.T) {
		for _, c := range g.Customers("store-1", 500) {
			base, ok := BaseTraits(c.Persona)
			require.True(t, ok, "persona %q not in catalog", c.Persona)

			assert.InDelta(t, base.PriceConsciousness, c.PriceConsciousness, 15)
			assert.InDelta(t, base.LoyaltyTendency, c.LoyaltyTendency, 15)
			assert.InDelta(t, base.MobilePref, c.MobilePref, 15)
			assert.InDelta(t, base.Impulsiveness, c.Impulsiveness, 15)
			assert.InDelta(t, base.AvgOrderValue, c.AvgOrderValue, 20)
			assert.InDelta(t, base.VisitFrequency, c.VisitFrequency, 1)
		}
	})

	t.Run("count below 1 falls back to default", func(t *testing.T) {
		assert.Len(t, g.Customers("store-1", 0), DefaultCustomerCount)
		assert.Len(t, g.Customers("store-1", -5), DefaultCustomerCount)
	})

	t.Run("identity fields are populated", func(t *testing.T) {
		for _, c := range g.Customers("store-1", 50) {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, "store-1", c.StoreID)
			assert.NotEmpty(t, c.Name)
			assert.True(t, c.IsActive)

			assert.Equal(t, strings.ToLower(c.Email), c.Email, "emails are lower-cased")
			assert.Contains(t, c.Email, "@")
		}
	})

	t.Run("same seed produces the same population modulo IDs", func(t *testing.T) {
		a := NewGenerator(rand.New(rand.NewSource(7))).Customers("store-1", 20)
		b := NewGenerator(rand.New(rand.NewSource(7))).Customers("store-1", 20)

		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].Persona, b[i].Persona)
			assert.Equal(t, a[i].Name, b[i].Name)
			assert.Equal(t, a[i].PriceConsciousness, b[i].PriceConsciousness)
			assert.Equal(t, a[i].AvgOrderValue, b[i].AvgOrderValue)
			assert.Equal(t, a[i].VisitFrequency, b[i].VisitFrequency)
		}
	})
}

func TestPersonaTags(t *testing.T) {
	tags := PersonaTags()
	assert.Len(t, tags, 4)
	assert.IsNonDecreasing(t, tags, "tag order must be stable")
}

// Concurrent generate requests share one Generator; the race detector
// flags any sharing of draw state between in-flight batches.
func TestGenerator_ConcurrentBatches(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(9)))

	var wg sync.WaitGroup
	batches := make([][]model.Customer, 4)
	for i := range batches {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			batches[i] = g.Customers("store-1", 50)
		}(i)
	}
	wg.Wait()

	for _, batch := range batches {
		require.Len(t, batch, 50)
	}
}

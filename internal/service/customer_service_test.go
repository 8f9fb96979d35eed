package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/storesim/internal/model"
)

func TestAggregateCustomers(t *testing.T) {
	t.Run("empty population", func(t *testing.T) {
		analytics := AggregateCustomers(nil)
		assert.Zero(t, analytics.TotalCustomers)
		assert.Empty(t, analytics.PersonaDistribution)
		assert.Zero(t, analytics.AverageTraits.PriceConsciousness)
		assert.Zero(t, analytics.TotalPotentialRevenue)
	})

	t.Run("distribution, averages and potential revenue", func(t *testing.T) {
		customers := []model.Customer{
			{Persona: model.PersonaPriceSensitive, PriceConsciousness: 80, LoyaltyTendency: 20, MobilePref: 40, Impulsiveness: 10, AvgOrderValue: 30, VisitFrequency: 2},
			{Persona: model.PersonaPriceSensitive, PriceConsciousness: 90, LoyaltyTendency: 40, MobilePref: 60, Impulsiveness: 30, AvgOrderValue: 40, VisitFrequency: 1},
			{Persona: model.PersonaImpulseBuyer, PriceConsciousness: 25, LoyaltyTendency: 45, MobilePref: 80, Impulsiveness: 95, AvgOrderValue: 100, VisitFrequency: 3},
		}

		analytics := AggregateCustomers(customers)

		assert.Equal(t, 3, analytics.TotalCustomers)
		assert.Equal(t, 2, analytics.PersonaDistribution[model.PersonaPriceSensitive])
		assert.Equal(t, 1, analytics.PersonaDistribution[model.PersonaImpulseBuyer])

		assert.Equal(t, 65, analytics.AverageTraits.PriceConsciousness)
		assert.Equal(t, 35, analytics.AverageTraits.LoyaltyTendency)
		assert.Equal(t, 60, analytics.AverageTraits.MobilePref)
		assert.Equal(t, 45, analytics.AverageTraits.Impulsiveness)

		// 30*2 + 40*1 + 100*3
		assert.InDelta(t, 400.0, analytics.TotalPotentialRevenue, 1e-9)
	})
}

func TestGroupByPersona(t *testing.T) {
	customers := []model.Customer{
		{ID: "a", Persona: model.PersonaMobileFirst},
		{ID: "b", Persona: model.PersonaMobileFirst},
		{ID: "c", Persona: model.PersonaLoyaltyDriven},
	}

	grouped := GroupByPersona(customers)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[model.PersonaMobileFirst], 2)
	assert.Len(t, grouped[model.PersonaLoyaltyDriven], 1)
}

func TestProductService_CostValidation(t *testing.T) {
	svc := NewProductService(nil, nil)

	_, err := svc.Add(context.Background(), "store-1", "Widget", 10, 12, "misc")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "cost")

	_, err = svc.Add(context.Background(), "store-1", "Widget", 10, 10, "misc")
	require.Error(t, err, "cost equal to price is rejected")
	assert.True(t, IsValidation(err))
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/storesim/internal/model"
)

var aggregateNow = time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

func txnFixture(persona, status, method string, final float64, createdAt time.Time) model.Transaction {
	return model.Transaction{
		ID:              "txn-" + persona + "-" + createdAt.Format("150405.000"),
		StoreID:         "store-1",
		CustomerID:      "cust-1",
		CustomerName:    "Casey Miller",
		CustomerPersona: persona,
		TotalAmount:     final,
		FinalAmount:     final,
		PaymentMethod:   method,
		PaymentStatus:   status,
		CreatedAt:       createdAt,
	}
}

func TestAggregate_EmptySet(t *testing.T) {
	analytics := Aggregate(nil, aggregateNow)

	assert.Zero(t, analytics.TotalTransactions)
	assert.Zero(t, analytics.SuccessfulTransactions)
	assert.Zero(t, analytics.FailedTransactions)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Zero(t, analytics.AverageOrderValue, "no division by zero on empty sets")
	assert.Empty(t, analytics.RecentTransactions)
	assert.Empty(t, analytics.PersonaPerformance)

	require.Len(t, analytics.DailyRevenue, 7)
	for _, day := range analytics.DailyRevenue {
		assert.Zero(t, day.Revenue)
	}
	assert.Equal(t, "2026-08-23", analytics.DailyRevenue[0].Date)
	assert.Equal(t, "2026-08-29", analytics.DailyRevenue[6].Date)
}

func TestAggregate_DailyRevenue(t *testing.T) {
	sameDay := aggregateNow.AddDate(0, 0, -2)
	txns := []model.Transaction{
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentCard, 40, sameDay),
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentUPI, 60, sameDay.Add(2*time.Hour)),
		txnFixture(model.PersonaMobileFirst, model.PaymentFailed, model.PaymentWallet, 25, sameDay.Add(3*time.Hour)),
	}

	analytics := Aggregate(txns, aggregateNow)

	require.Len(t, analytics.DailyRevenue, 7)
	for _, day := range analytics.DailyRevenue {
		if day.Date == sameDay.Format("2006-01-02") {
			assert.InDelta(t, 100.0, day.Revenue, 1e-9, "only the two successful transactions count")
		} else {
			assert.Zero(t, day.Revenue, "day %s", day.Date)
		}
	}
}

func TestAggregate_Totals(t *testing.T) {
	txns := []model.Transaction{
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentCard, 100, aggregateNow),
		txnFixture(model.PersonaImpulseBuyer, model.PaymentFailed, model.PaymentCard, 50, aggregateNow),
		txnFixture(model.PersonaPriceSensitive, model.PaymentSuccess, model.PaymentCrypto, 20, aggregateNow),
	}

	analytics := Aggregate(txns, aggregateNow)

	assert.Equal(t, 3, analytics.TotalTransactions)
	assert.Equal(t, 2, analytics.SuccessfulTransactions)
	assert.Equal(t, 1, analytics.FailedTransactions)
	assert.InDelta(t, 120.0, analytics.TotalRevenue, 1e-9)
	assert.InDelta(t, 60.0, analytics.AverageOrderValue, 1e-9)

	assert.Equal(t, 2, analytics.PaymentMethodDistribution[model.PaymentCard], "failed transactions still count toward the method distribution")
	assert.Equal(t, 1, analytics.PaymentMethodDistribution[model.PaymentCrypto])
}

func TestAggregate_PersonaPerformance(t *testing.T) {
	txns := []model.Transaction{
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentCard, 90, aggregateNow),
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentCard, 10, aggregateNow),
		txnFixture(model.PersonaImpulseBuyer, model.PaymentFailed, model.PaymentCard, 30, aggregateNow),
	}

	analytics := Aggregate(txns, aggregateNow)

	stats, ok := analytics.PersonaPerformance[model.PersonaImpulseBuyer]
	require.True(t, ok)
	assert.Equal(t, 3, stats.Transactions)
	assert.InDelta(t, 100.0, stats.Revenue, 1e-9, "revenue excludes failed payments")
	assert.InDelta(t, 66.7, stats.SuccessRate, 1e-9, "success rate is rounded to one decimal")
}

func TestAggregate_RecentTransactions(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 15; i++ {
		txns = append(txns, txnFixture(model.PersonaMobileFirst, model.PaymentSuccess, model.PaymentUPI, 10,
			aggregateNow.Add(-time.Duration(i)*time.Hour)))
	}

	analytics := Aggregate(txns, aggregateNow)

	require.Len(t, analytics.RecentTransactions, 10)
	assert.Equal(t, txns[0].ID, analytics.RecentTransactions[0].ID, "newest transaction first")
	assert.Equal(t, txns[9].ID, analytics.RecentTransactions[9].ID)
}

func TestAggregate_PendingStaysUnsettled(t *testing.T) {
	txns := []model.Transaction{
		txnFixture(model.PersonaImpulseBuyer, model.PaymentSuccess, model.PaymentCard, 80, aggregateNow),
		txnFixture(model.PersonaImpulseBuyer, model.PaymentPending, model.PaymentUPI, 45, aggregateNow),
		txnFixture(model.PersonaMobileFirst, model.PaymentFailed, model.PaymentWallet, 30, aggregateNow),
	}

	analytics := Aggregate(txns, aggregateNow)

	assert.Equal(t, 3, analytics.TotalTransactions)
	assert.Equal(t, 1, analytics.SuccessfulTransactions)
	assert.Equal(t, 1, analytics.FailedTransactions, "a pending settlement is not a failure")
	assert.InDelta(t, 80.0, analytics.TotalRevenue, 1e-9, "pending amounts earn nothing yet")
	assert.Equal(t, 1, analytics.PaymentMethodDistribution[model.PaymentUPI], "pending still counts toward method usage")
}

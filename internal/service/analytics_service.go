package service

import (
	"context"
	"math"
	"time"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
)

const (
	dailyRevenueWindow = 7
	recentLimit        = 10
	dateLayout         = "2006-01-02"
)

type AnalyticsService struct {
	stores       *repository.StoreRepository
	transactions *repository.TransactionRepository
	now          func() time.Time
}

func NewAnalyticsService(stores *repository.StoreRepository, transactions *repository.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{stores: stores, transactions: transactions, now: time.Now}
}

type PersonaStats struct {
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	SuccessRate  float64 `json:"success_rate"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type Analytics struct {
	TotalTransactions         int                     `json:"total_transactions"`
	SuccessfulTransactions    int                     `json:"successful_transactions"`
	FailedTransactions        int                     `json:"failed_transactions"`
	TotalRevenue              float64                 `json:"total_revenue"`
	AverageOrderValue         float64                 `json:"average_order_value"`
	PaymentMethodDistribution map[string]int          `json:"payment_method_distribution"`
	PersonaPerformance        map[string]PersonaStats `json:"persona_performance"`
	DailyRevenue              []DailyRevenue          `json:"daily_revenue"`
	RecentTransactions        []model.Transaction     `json:"recent_transactions"`
}

func (s *AnalyticsService) GetAnalytics(ctx context.Context, storeID string) (Analytics, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return Analytics{}, err
	}

	txns, err := s.transactions.ListByStore(ctx, storeID)
	if err != nil {
		return Analytics{}, err
	}
	return Aggregate(txns, s.now()), nil
}

// Aggregate reduces a transaction set (expected newest first, as the
// repository returns it) into the reporting shape. Revenue only counts
// successful payments; the payment-method distribution counts every
// transaction regardless of status.
func Aggregate(txns []model.Transaction, now time.Time) Analytics {
	analytics := Analytics{
		TotalTransactions:         len(txns),
		PaymentMethodDistribution: make(map[string]int),
		PersonaPerformance:        make(map[string]PersonaStats),
	}

	type personaCount struct{ total, successful int }
	personaCounts := make(map[string]personaCount)
	revenueByDate := make(map[string]float64)

	for _, txn := range txns {
		analytics.PaymentMethodDistribution[txn.PaymentMethod]++

		persona := txn.CustomerPersona
		if persona == "" {
			persona = "UNKNOWN"
		}
		counts := personaCounts[persona]
		counts.total++

		stats := analytics.PersonaPerformance[persona]
		stats.Transactions++

		switch txn.PaymentStatus {
		case model.PaymentSuccess:
			analytics.SuccessfulTransactions++
			analytics.TotalRevenue += txn.FinalAmount
			counts.successful++
			stats.Revenue += txn.FinalAmount
			revenueByDate[txn.CreatedAt.Format(dateLayout)] += txn.FinalAmount
		case model.PaymentFailed:
			analytics.FailedTransactions++
		}

		personaCounts[persona] = counts
		analytics.PersonaPerformance[persona] = stats
	}

	if analytics.SuccessfulTransactions > 0 {
		analytics.AverageOrderValue = analytics.TotalRevenue / float64(analytics.SuccessfulTransactions)
	}

	for persona, counts := range personaCounts {
		stats := analytics.PersonaPerformance[persona]
		rate := float64(counts.successful) / float64(counts.total) * 100
		stats.SuccessRate = math.Round(rate*10) / 10
		analytics.PersonaPerformance[persona] = stats
	}

	// The 7 calendar days ending today, oldest first; empty days report 0.
	analytics.DailyRevenue = make([]DailyRevenue, 0, dailyRevenueWindow)
	for i := dailyRevenueWindow - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		analytics.DailyRevenue = append(analytics.DailyRevenue, DailyRevenue{
			Date:    date,
			Revenue: revenueByDate[date],
		})
	}

	if len(txns) > recentLimit {
		analytics.RecentTransactions = txns[:recentLimit]
	} else {
		analytics.RecentTransactions = txns
	}

	return analytics
}

package sim

import (
	"fmt"
	"math/rand"

	"github.com/bizpulse/storesim/internal/model"
)

const (
	basePurchaseProbability = 0.30
	maxPurchaseProbability  = 0.95
	affordabilityFactor     = 1.5
)

// SelectedProduct is one line of a purchase decision, with the price
// snapshotted at decision time.
type SelectedProduct struct {
	Product  model.Product
	Quantity int
	Price    float64
}

// Decision is the behavior model's output for a single visit.
type Decision struct {
	WillBuy         bool
	Probability     float64
	Products        []SelectedProduct
	PaymentMethod   string
	StrategyImpacts []model.StrategyImpact
}

// Decide rolls one purchase opportunity for a customer against the
// catalog and the active strategy set.
//
// Every active strategy contributes one probability term and one recorded
// impact entry whether or not the purchase happens. A willing buyer with
// no affordable products (price above 1.5x their average order value)
// ends up with an empty selection, which the driver treats as no sale.
func Decide(rng *rand.Rand, c model.Customer, products []model.Product, strategies []model.Strategy) Decision {
	p := personas[c.Persona]

	probability := basePurchaseProbability + p.PurchaseBonus

	impacts := make([]model.StrategyImpact, 0, len(strategies))
	for _, s := range strategies {
		impact, description := strategyImpact(c, s)
		probability += impact
		impacts = append(impacts, model.StrategyImpact{StrategyID: s.ID, Impact: description})
	}

	if probability > maxPurchaseProbability {
		probability = maxPurchaseProbability
	}

	d := Decision{
		Probability:     probability,
		WillBuy:         rng.Float64() < probability,
		StrategyImpacts: impacts,
	}

	if d.WillBuy {
		d.Products = selectProducts(rng, c, products, p.MaxItems)
	}

	pick := p.PickPayment
	if pick == nil {
		pick = anyMethod
	}
	d.PaymentMethod = pick(rng)

	return d
}

// strategyImpact returns the probability term one active strategy adds
// for this customer, plus the human-readable explanation recorded on the
// transaction. Unknown kinds and missing parameters degrade to zero
// impact rather than failing.
func strategyImpact(c model.Customer, s model.Strategy) (float64, string) {
	switch s.Type {
	case model.StrategyPercentageDiscount:
		pct := s.DiscountPercentage
		if c.PriceConsciousness > 60 {
			return pct * 0.02, fmt.Sprintf("Attracted by %.0f%% discount", pct)
		}
		return pct * 0.01, fmt.Sprintf("Moderately interested in %.0f%% discount", pct)

	case model.StrategyLoyaltyPoints:
		if c.LoyaltyTendency > 60 {
			return 0.25, "Motivated by loyalty points program"
		}
		return 0.10, "Slightly interested in loyalty points"

	case model.StrategyMobilePushOffer:
		if c.MobilePref > 70 {
			return 0.30, "Engaged through mobile push notification"
		}
		return 0.05, "Noticed mobile offer"
	}

	return 0, "No measurable effect"
}

// selectProducts samples up to maxItems products uniformly with
// replacement from the affordable set, skipping duplicate draws, so the
// selection can come up short of the persona's maximum.
func selectProducts(rng *rand.Rand, c model.Customer, products []model.Product, maxItems int) []SelectedProduct {
	var affordable []model.Product
	for _, p := range products {
		if p.Price <= c.AvgOrderValue*affordabilityFactor {
			affordable = append(affordable, p)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	if maxItems < 1 {
		maxItems = 1
	}
	numItems := rng.Intn(maxItems) + 1

	var selected []SelectedProduct
	for i := 0; i < numItems && i < len(affordable); i++ {
		candidate := affordable[rng.Intn(len(affordable))]

		duplicate := false
		for _, s := range selected {
			if s.Product.ID == candidate.ID {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		selected = append(selected, SelectedProduct{
			Product:  candidate,
			Quantity: rng.Intn(2) + 1,
			Price:    candidate.Price,
		})
	}

	return selected
}

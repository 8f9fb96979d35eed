package sim

import (
	"math/rand"
	"sort"

	"github.com/bizpulse/storesim/internal/model"
)

// Traits is the baseline behavioral vector of a persona archetype.
type Traits struct {
	PriceConsciousness int
	LoyaltyTendency    int
	MobilePref         int
	Impulsiveness      int
	AvgOrderValue      float64
	VisitFrequency     int
}

// profile bundles everything persona-specific so adding a persona is a
// data change, not new branching.
type profile struct {
	Base          Traits
	PurchaseBonus float64
	MaxItems      int
	PickPayment   func(rng *rand.Rand) string
}

var allMethods = []string{model.PaymentCard, model.PaymentUPI, model.PaymentWallet, model.PaymentCrypto}

func anyMethod(rng *rand.Rand) string {
	return allMethods[rng.Intn(len(allMethods))]
}

var personas = map[string]profile{
	model.PersonaPriceSensitive: {
		Base:          Traits{PriceConsciousness: 85, LoyaltyTendency: 30, MobilePref: 50, Impulsiveness: 20, AvgOrderValue: 35, VisitFrequency: 1},
		PurchaseBonus: 0.10,
		MaxItems:      1,
		PickPayment:   anyMethod,
	},
	model.PersonaLoyaltyDriven: {
		Base:          Traits{PriceConsciousness: 40, LoyaltyTendency: 90, MobilePref: 60, Impulsiveness: 35, AvgOrderValue: 75, VisitFrequency: 4},
		PurchaseBonus: 0.30,
		MaxItems:      2,
		PickPayment:   anyMethod,
	},
	model.PersonaMobileFirst: {
		Base:          Traits{PriceConsciousness: 60, LoyaltyTendency: 50, MobilePref: 95, Impulsiveness: 70, AvgOrderValue: 45, VisitFrequency: 3},
		PurchaseBonus: 0.20,
		MaxItems:      1,
		PickPayment: func(rng *rand.Rand) string {
			if rng.Float64() < 0.7 {
				return model.PaymentUPI
			}
			return model.PaymentWallet
		},
	},
	model.PersonaImpulseBuyer: {
		Base:          Traits{PriceConsciousness: 25, LoyaltyTendency: 40, MobilePref: 80, Impulsiveness: 95, AvgOrderValue: 85, VisitFrequency: 2},
		PurchaseBonus: 0.40,
		MaxItems:      3,
		PickPayment: func(rng *rand.Rand) string {
			if rng.Float64() < 0.5 {
				return model.PaymentCard
			}
			return model.PaymentUPI
		},
	},
}

// PersonaTags returns the catalog's persona names in a stable order.
func PersonaTags() []string {
	tags := make([]string, 0, len(personas))
	for tag := range personas {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// BaseTraits returns the unperturbed trait vector for a persona tag.
// The bool reports whether the tag exists in the catalog.
func BaseTraits(tag string) (Traits, bool) {
	p, ok := personas[tag]
	return p.Base, ok
}

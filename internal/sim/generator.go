package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizpulse/storesim/internal/model"
)

const DefaultCustomerCount = 20

var firstNames = []string{"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Avery", "Quinn", "Sage", "River"}

var lastNames = []string{"Smith", "Johnson", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas"}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// Generator instantiates customers from the persona catalog by perturbing
// each baseline trait inside a bounded window. Each batch draws from its
// own child source; the parent is the only shared state, so concurrent
// batches are safe.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) childRNG() *rand.Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return rand.New(rand.NewSource(g.rng.Int63()))
}

// Customers builds a population for a store. Each customer gets a
// uniformly chosen persona and per-trait variation of ±15 (±20 for order
// value, ±1 for visit frequency), clamped to [0, 100]; visit frequency is
// floored at 1. A count below 1 falls back to DefaultCustomerCount.
func (g *Generator) Customers(storeID string, count int) []model.Customer {
	if count < 1 {
		count = DefaultCustomerCount
	}

	tags := PersonaTags()
	customers := make([]model.Customer, 0, count)
	rng := g.childRNG()

	for i := 0; i < count; i++ {
		tag := tags[rng.Intn(len(tags))]
		base := personas[tag].Base
		name := randomName(rng)

		customers = append(customers, model.Customer{
			ID:                 uuid.NewString(),
			StoreID:            storeID,
			Name:               name,
			Email:              randomEmail(rng, name),
			Persona:            tag,
			PriceConsciousness: vary(rng, base.PriceConsciousness, 15),
			LoyaltyTendency:    vary(rng, base.LoyaltyTendency, 15),
			MobilePref:         vary(rng, base.MobilePref, 15),
			Impulsiveness:      vary(rng, base.Impulsiveness, 15),
			AvgOrderValue:      float64(vary(rng, int(base.AvgOrderValue), 20)),
			VisitFrequency:     max(1, vary(rng, base.VisitFrequency, 1)),
			IsActive:           true,
			CreatedAt:          time.Now(),
		})
	}

	return customers
}

// vary draws a uniform integer from [base-window, base+window] with the
// window itself clamped to the 0-100 trait scale.
func vary(rng *rand.Rand, base, window int) int {
	lo := max(0, base-window)
	hi := min(100, base+window)
	return lo + rng.Intn(hi-lo+1)
}

func randomName(rng *rand.Rand) string {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	return first + " " + last
}

func randomEmail(rng *rand.Rand, name string) string {
	domain := emailDomains[rng.Intn(len(emailDomains))]
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", local, rng.Intn(999), domain)
}

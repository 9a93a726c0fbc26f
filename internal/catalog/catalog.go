// Package catalog holds the static curated product pools and the sampling
// utility used by gift selection. Pools are defined once at init and are
// read-only afterwards; a product may appear in several pools. Callers must
// treat every returned slice as immutable — Sample is the only operation
// that copies.
package catalog

import (
	"math/rand"

	"github.com/momently/go-gift-backend/internal/domain"
)

// RecipientPool returns the curated pool for a recipient facet. The second
// return is false for RecipientUnknown, which has no pool.
func RecipientPool(r domain.Recipient) ([]domain.Product, bool) {
	p, ok := recipientPools[r]
	return p, ok
}

// BudgetPool returns the budget band pool for a parsed budget value,
// selecting under-25 / 25-to-50 / 50-to-100 / over-100 by the value.
func BudgetPool(max int) []domain.Product {
	switch {
	case max <= 25:
		return budgetUnder25
	case max <= 50:
		return budget25to50
	case max <= 100:
		return budget50to100
	default:
		return budgetOver100
	}
}

// InterestPool returns the pool for an interest keyword, or false when the
// keyword is not part of the interest vocabulary.
func InterestPool(key string) ([]domain.Product, bool) {
	p, ok := interestPools[key]
	return p, ok
}

// UrgencyPool returns the pool for an urgency facet. UrgencyNone has no
// pool; UrgencyLocal has one but the classifier never produces it, so it is
// only reachable through the catalog union.
func UrgencyPool(u domain.Urgency) ([]domain.Product, bool) {
	p, ok := urgencyPools[u]
	return p, ok
}

// Sponsored returns the partner-curated pool shown on the landing page.
// Sponsored products are not part of the facet union.
func Sponsored() []domain.Product { return sponsoredPool }

// All returns the union of every facet pool, duplicates included, in
// declaration order: recipients, budget bands, interests, urgency (local
// last). Sponsored products are excluded.
func All() []domain.Product { return allProducts }

// Interests returns the interest vocabulary in declaration order.
func Interests() []string { return interestKeys }

// Sample returns up to count products drawn without replacement from pool,
// as a uniformly shuffled copy. The pool itself is never mutated. A count
// larger than the pool returns the whole shuffled pool; a count below zero
// returns an empty slice.
func Sample(rng *rand.Rand, pool []domain.Product, count int) []domain.Product {
	shuffled := append([]domain.Product(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count < 0 {
		count = 0
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

var allProducts []domain.Product

// interestKeys is the interest vocabulary; the classifier matches prompts
// against these keys in this order.
var interestKeys = []string{"tech", "beauty", "cozy", "fitness", "photography", "fashion", "gaming"}

func init() {
	for _, r := range []domain.Recipient{
		domain.RecipientHer, domain.RecipientHim, domain.RecipientParents,
		domain.RecipientFriends, domain.RecipientKids,
	} {
		allProducts = append(allProducts, recipientPools[r]...)
	}
	allProducts = append(allProducts, budgetUnder25...)
	allProducts = append(allProducts, budget25to50...)
	allProducts = append(allProducts, budget50to100...)
	allProducts = append(allProducts, budgetOver100...)
	for _, k := range interestKeys {
		allProducts = append(allProducts, interestPools[k]...)
	}
	for _, u := range []domain.Urgency{
		domain.UrgencyTomorrow, domain.UrgencyThisWeek, domain.UrgencyDigital, domain.UrgencyLocal,
	} {
		allProducts = append(allProducts, urgencyPools[u]...)
	}
}

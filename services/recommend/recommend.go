// Package recommend picks "related products" for a product detail page.
//
// The heuristic is a greedy three-tier scan over the catalog, trading
// recommendation quality for determinism and a single O(n) pass.
package recommend

import "github.com/jarvnw/website-umkm-store/models"

// DefaultLimit caps the related list on the product page.
const DefaultLimit = 4

const (
	priceBandLow  = 0.9
	priceBandHigh = 1.2
)

func inPriceBand(price, focal float64) bool {
	return price >= focal*priceBandLow && price <= focal*priceBandHigh
}

// Related returns up to limit products related to focal, in strict tier
// order: same category within the price band, then the rest of the
// category, then other categories within the price band. A product never
// appears in more than one tier; order within a tier follows catalog order.
// Fewer than limit matches returns however many were found.
func Related(focal models.Product, catalog []models.Product, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var tier1, tier2, tier3 []models.Product
	for _, p := range catalog {
		if p.ID == focal.ID {
			continue
		}
		switch {
		case p.Category == focal.Category && inPriceBand(p.Price, focal.Price):
			tier1 = append(tier1, p)
		case p.Category == focal.Category:
			tier2 = append(tier2, p)
		case inPriceBand(p.Price, focal.Price):
			tier3 = append(tier3, p)
		}
	}

	related := make([]models.Product, 0, limit)
	for _, tier := range [][]models.Product{tier1, tier2, tier3} {
		for _, p := range tier {
			if len(related) == limit {
				return related
			}
			related = append(related, p)
		}
	}
	return related
}

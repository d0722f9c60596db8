package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvnw/website-umkm-store/models"
)

func product(id, category string, price float64) models.Product {
	return models.Product{ID: id, Name: id, Category: category, Price: price}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestTierPrecedenceOrder(t *testing.T) {
	catalog := []models.Product{
		product("A", "shoes", 100),
		product("B", "shoes", 110), // tier 1: same category, in band
		product("C", "shoes", 500), // tier 2: same category, out of band
		product("D", "bags", 105),  // tier 3: other category, in band
	}
	related := Related(catalog[0], catalog, DefaultLimit)
	assert.Equal(t, []string{"B", "C", "D"}, ids(related))
}

func TestExcludesFocalProduct(t *testing.T) {
	catalog := []models.Product{
		product("A", "shoes", 100),
		product("B", "shoes", 100),
	}
	related := Related(catalog[0], catalog, DefaultLimit)
	assert.NotContains(t, ids(related), "A")
}

func TestTiersAreMutuallyExclusive(t *testing.T) {
	catalog := []models.Product{
		product("A", "shoes", 100),
		product("B", "shoes", 95),
		product("C", "shoes", 118),
		product("D", "shoes", 300),
		product("E", "bags", 101),
		product("F", "hats", 90),
	}
	related := Related(catalog[0], catalog, 10)

	seen := map[string]int{}
	for _, p := range related {
		seen[p.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "product %s appeared %d times", id, n)
	}
}

func TestTruncatesToLimit(t *testing.T) {
	catalog := []models.Product{product("A", "shoes", 100)}
	for _, id := range []string{"B", "C", "D", "E", "F", "G"} {
		catalog = append(catalog, product(id, "shoes", 100))
	}
	related := Related(catalog[0], catalog, DefaultLimit)
	require.Len(t, related, 4)
	// Catalog iteration order within the tier.
	assert.Equal(t, []string{"B", "C", "D", "E"}, ids(related))
}

func TestReturnsFewerWhenFewerExist(t *testing.T) {
	catalog := []models.Product{
		product("A", "shoes", 100),
		product("B", "bags", 5000), // matches no tier
	}
	related := Related(catalog[0], catalog, DefaultLimit)
	assert.Empty(t, related)

	catalog = append(catalog, product("C", "shoes", 120))
	related = Related(catalog[0], catalog, DefaultLimit)
	assert.Equal(t, []string{"C"}, ids(related))
}

func TestPriceBandBoundaries(t *testing.T) {
	focal := product("A", "shoes", 100)
	catalog := []models.Product{
		focal,
		product("low", "bags", 90),       // exactly 0.9x, in band
		product("high", "bags", 120),     // exactly 1.2x, in band
		product("below", "bags", 89.99),  // out
		product("above", "bags", 120.01), // out
	}
	related := Related(focal, catalog, DefaultLimit)
	assert.Equal(t, []string{"low", "high"}, ids(related))
}

func TestEmptyCatalog(t *testing.T) {
	assert.Empty(t, Related(product("A", "shoes", 100), nil, DefaultLimit))
}

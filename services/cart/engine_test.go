package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvnw/website-umkm-store/models"
)

func newCart() models.Cart {
	return models.Cart{SessionID: "guest_test", Items: []models.CartItem{}}
}

var (
	shirt = models.Product{
		ID:       "p1",
		Name:     "Shirt",
		Price:    45000,
		Category: "apparel",
	}
	shirtL = models.Variation{ID: "v1", Name: "L", Price: 50000, Stock: 5}
	shirtM = models.Variation{ID: "v2", Name: "M", Price: 48000, Stock: 3}
	mug    = models.Product{
		ID:       "p2",
		Name:     "Mug",
		Price:    30000,
		Category: "home",
	}
)

func TestAddMergesSameProductAndVariation(t *testing.T) {
	c := newCart()
	for i := 0; i < 5; i++ {
		c, _ = Add(c, shirt, &shirtL)
	}
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddDistinguishesVariations(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, shirt, &shirtM)
	c, _ = Add(c, shirt, nil)

	require.Len(t, c.Items, 3)
	assert.Equal(t, "v1", c.Items[0].VariationID())
	assert.Equal(t, "v2", c.Items[1].VariationID())
	assert.Equal(t, "", c.Items[2].VariationID())
}

func TestAddSignalsCartOpen(t *testing.T) {
	c := newCart()
	_, opened := Add(c, shirt, nil)
	assert.True(t, opened)
}

func TestAddPreservesOriginalSnapshot(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)

	// Price change after the first add must not leak into the line.
	changed := shirt
	changed.Price = 99000
	changedVar := shirtL
	changedVar.Price = 99000
	c, _ = Add(c, changed, &changedVar)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 50000.0, c.Items[0].Variation.Price)
	assert.Equal(t, 45000.0, c.Items[0].Price)
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c = Remove(c, "missing", "")
	c = Remove(c, shirt.ID, "wrong-variation")
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		c := newCart()
		c, _ = Add(c, shirt, &shirtL)
		c = UpdateQuantity(c, shirt.ID, shirtL.ID, qty)
		assert.Empty(t, c.Items, "quantity %d should remove the line", qty)
	}
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c = UpdateQuantity(c, shirt.ID, shirtL.ID, 7)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestUpdateQuantityEmptyVariationMatchesNoVariationLine(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, nil)
	c = UpdateQuantity(c, shirt.ID, "", 4)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)

	c = UpdateQuantity(c, shirt.ID, "", 0)
	assert.Empty(t, c.Items)
}

func TestClear(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, mug, nil)
	c = Clear(c)
	assert.Empty(t, c.Items)
}

func TestTotalUsesVariationPrice(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL) // 50000, not base 45000
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, mug, nil) // base 30000

	assert.Equal(t, 2*50000.0+30000.0, Total(c))
}

func TestTotalInvariantUnderReordering(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, shirt, &shirtM)
	c, _ = Add(c, mug, nil)
	want := Total(c)

	reversed := newCart()
	for i := len(c.Items) - 1; i >= 0; i-- {
		reversed.Items = append(reversed.Items, c.Items[i])
	}
	assert.Equal(t, want, Total(reversed))

	sum := 0.0
	for _, item := range c.Items {
		sum += item.Subtotal()
	}
	assert.Equal(t, want, sum)
}

func TestCount(t *testing.T) {
	c := newCart()
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, shirt, &shirtL)
	c, _ = Add(c, mug, nil)
	assert.Equal(t, 3, Count(c))
}

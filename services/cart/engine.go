package cart

import (
	"time"

	"github.com/jarvnw/website-umkm-store/models"
)

// Line identity is the (productID, variationID) pair, where "" means the
// line was added without a variation. The same product may appear on
// several lines as long as the variations differ.

func findLine(items []models.CartItem, productID, variationID string) int {
	for i, item := range items {
		if item.ProductID == productID && item.VariationID() == variationID {
			return i
		}
	}
	return -1
}

// Add merges into an existing line by (productID, variationID), incrementing
// its quantity without re-copying the snapshot; otherwise it appends a new
// quantity-1 line snapshotting the product (and variation) as they are now.
// The returned bool tells the caller to open the cart UI.
func Add(cart models.Cart, product models.Product, variation *models.Variation) (models.Cart, bool) {
	variationID := ""
	if variation != nil {
		variationID = variation.ID
	}

	if i := findLine(cart.Items, product.ID, variationID); i >= 0 {
		cart.Items[i].Quantity++
		return cart, true
	}

	var snapshot *models.Variation
	if variation != nil {
		v := *variation
		snapshot = &v
	}
	cart.Items = append(cart.Items, models.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Category:      product.Category,
		Image:         product.Image,
		Quantity:      1,
		Variation:     snapshot,
		AddedAt:       time.Now(),
	})
	return cart, true
}

// Remove deletes the matching line. Removing an absent line is a no-op.
func Remove(cart models.Cart, productID, variationID string) models.Cart {
	if i := findLine(cart.Items, productID, variationID); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}
	return cart
}

// UpdateQuantity overwrites the line's quantity; anything below 1 removes
// the line instead.
func UpdateQuantity(cart models.Cart, productID, variationID string, quantity int) models.Cart {
	if quantity < 1 {
		return Remove(cart, productID, variationID)
	}
	if i := findLine(cart.Items, productID, variationID); i >= 0 {
		cart.Items[i].Quantity = quantity
	}
	return cart
}

// Clear empties the cart, used after a successful order hand-off.
func Clear(cart models.Cart) models.Cart {
	cart.Items = []models.CartItem{}
	return cart
}

// Total sums per-line subtotals, using the captured variation's price when
// the line has one.
func Total(cart models.Cart) float64 {
	var total float64
	for _, item := range cart.Items {
		total += item.Subtotal()
	}
	return total
}

// Count is the badge number: total units across all lines.
func Count(cart models.Cart) int {
	var n int
	for _, item := range cart.Items {
		n += item.Quantity
	}
	return n
}

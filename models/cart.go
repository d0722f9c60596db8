package models

import "time"

// Cart is a guest-session shopping cart. Carts are kept in the local cache
// only, never in Postgres: the checkout hand-off happens over WhatsApp and
// no server-side order record is created.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem snapshots the product at add time. Later edits to the product do
// not change lines already sitting in a cart.
type CartItem struct {
	ProductID     string     `json:"productId"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice,omitempty"`
	Category      string     `json:"category"`
	Image         string     `json:"image"`
	Quantity      int        `json:"quantity"`
	Variation     *Variation `json:"variation,omitempty"`
	AddedAt       time.Time  `json:"addedAt"`
}

// VariationID returns the line's variation id, or "" when the line was added
// without a variation. The empty string is the canonical "no variation"
// sentinel everywhere in the cart engine.
func (i CartItem) VariationID() string {
	if i.Variation == nil {
		return ""
	}
	return i.Variation.ID
}

// Subtotal uses the selected variation's price when one was captured.
func (i CartItem) Subtotal() float64 {
	price := i.Price
	if i.Variation != nil {
		price = i.Variation.Price
	}
	return price * float64(i.Quantity)
}

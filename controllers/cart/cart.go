package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/models"
	cartengine "github.com/jarvnw/website-umkm-store/services/cart"
	"github.com/jarvnw/website-umkm-store/store"
)

func sessionID(c *gin.Context) (string, bool) {
	id, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id.(string), true
}

type AddItemInput struct {
	ProductID   string `json:"product_id" binding:"required"`
	VariationID string `json:"variation_id"`
}

type UpdateQuantityInput struct {
	ProductID   string `json:"product_id" binding:"required"`
	VariationID string `json:"variation_id"`
	Quantity    int    `json:"quantity"`
}

// GET /store/cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		cart, err := s.GetCart(session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cartengine.Total(cart),
			"count": cartengine.Count(cart),
		})
	}
}

// POST /store/cart
//
// Adds one unit. An existing (product, variation) line is merged, keeping
// the snapshot it was created with even if the product changed since.
func AddToCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found, err := s.GetProduct(input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var variation *models.Variation
		if input.VariationID != "" {
			for i := range product.Variations {
				if product.Variations[i].ID == input.VariationID {
					variation = &product.Variations[i]
					break
				}
			}
			if variation == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Variation does not exist"})
				return
			}
		}

		cart, err := s.GetCart(session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		cart, opened := cartengine.Add(cart, *product, variation)
		if err := s.SaveCart(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":     cart.Items,
			"total":     cartengine.Total(cart),
			"count":     cartengine.Count(cart),
			"open_cart": opened,
		})
	}
}

// PUT /store/cart
//
// A quantity below 1 removes the line. An empty variation_id targets the
// line that was added without a variation.
func UpdateQuantity(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := s.GetCart(session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		cart = cartengine.UpdateQuantity(cart, input.ProductID, input.VariationID, input.Quantity)
		if err := s.SaveCart(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cartengine.Total(cart),
			"count": cartengine.Count(cart),
		})
	}
}

// DELETE /store/cart/:product_id?variation_id=...
func RemoveFromCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		cart, err := s.GetCart(session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		cart = cartengine.Remove(cart, c.Param("product_id"), c.Query("variation_id"))
		if err := s.SaveCart(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cartengine.Total(cart),
			"count": cartengine.Count(cart),
		})
	}
}

// DELETE /store/cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		if err := s.DeleteCart(session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

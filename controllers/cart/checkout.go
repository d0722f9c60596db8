package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartengine "github.com/jarvnw/website-umkm-store/services/cart"
	"github.com/jarvnw/website-umkm-store/store"
)

// POST /store/cart/checkout
//
// Validates the form, routes the order to a random active CS contact and
// returns the wa.me deep link. The deep link is the order placement; on
// success the cart is cleared. Validation failures leave the cart (and the
// buyer's entered data, which lives client-side) untouched.
func Checkout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var info cartengine.UserInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := s.GetCart(session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		contacts, err := s.GetCSContacts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}

		order, err := cartengine.Checkout(cart, info, contacts)
		if err != nil {
			switch {
			case errors.Is(err, cartengine.ErrNoActiveContact):
				c.JSON(http.StatusConflict, gin.H{"error": "No customer-service contact is active right now"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		if err := s.DeleteCart(session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

package productcontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/store"
)

// SaveProduct upserts a product from the admin form. The base price always
// mirrors the first variation's price, so list views never show a stale
// number.
func SaveProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if strings.TrimSpace(product.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
			return
		}
		if len(product.Variations) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one variation is required"})
			return
		}
		for _, v := range product.Variations {
			if strings.TrimSpace(v.Name) == "" || v.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Each variation needs a name and a price"})
				return
			}
		}

		if product.ID == "" {
			product.ID = uuid.NewString()
			product.CreatedAt = time.Now()
		}
		if product.CreatedAt.IsZero() {
			product.CreatedAt = time.Now()
		}
		if product.Category == "" {
			product.Category = "General"
		}
		for i := range product.Variations {
			if product.Variations[i].ID == "" {
				product.Variations[i].ID = uuid.NewString()
			}
			product.Variations[i].ProductID = product.ID
		}

		// Base price mirrors the first variation.
		product.Price = product.Variations[0].Price
		if product.Variations[0].OriginalPrice > 0 {
			product.OriginalPrice = product.Variations[0].OriginalPrice
		}
		if product.CoverMedia.URL != "" {
			product.Image = product.CoverMedia.URL
		}
		product.UpdatedAt = time.Now()

		if err := s.SaveProduct(product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

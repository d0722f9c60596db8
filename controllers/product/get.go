package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/services/recommend"
	"github.com/jarvnw/website-umkm-store/store"
)

// GetProducts returns the catalog in insertion order. Optional filters:
// ?category=<name> and ?featured=true.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.GetProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		category := c.Query("category")
		featured := c.Query("featured") == "true"
		if category != "" || featured {
			filtered := products[:0]
			for _, p := range products {
				if category != "" && p.Category != category {
					continue
				}
				if featured && !p.IsFeatured {
					continue
				}
				filtered = append(filtered, p)
			}
			products = filtered
		}

		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product with its variations.
// URL param: /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, found, err := s.GetProduct(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetRelatedProducts returns up to four products related to the focal one,
// closest matches first.
func GetRelatedProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		products, err := s.GetProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		for _, p := range products {
			if p.ID == id {
				c.JSON(http.StatusOK, recommend.Related(p, products, recommend.DefaultLimit))
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	}
}

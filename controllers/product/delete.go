package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/store"
)

// DeleteProduct removes a product; its variations cascade with it.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		if err := s.DeleteProduct(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

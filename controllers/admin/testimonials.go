package admincontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/store"
)

// GET /admin/testimonials — all testimonials, active or not.
func GetTestimonials(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := s.GetTestimonials()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// POST /admin/testimonials — create or update.
func SaveTestimonial(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonial models.Testimonial
		if err := c.ShouldBindJSON(&testimonial); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(testimonial.ImageURL) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
			return
		}
		if testimonial.ID == "" {
			testimonial.ID = uuid.NewString()
		}
		if err := s.SaveTestimonial(testimonial); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save testimonial"})
			return
		}
		c.JSON(http.StatusOK, testimonial)
	}
}

// DELETE /admin/testimonials/:id
func DeleteTestimonial(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Testimonial ID is required"})
			return
		}
		if err := s.DeleteTestimonial(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
	}
}

package admincontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/store"
)

// GET /admin/cs-contacts
func GetCSContacts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := s.GetCSContacts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		c.JSON(http.StatusOK, contacts)
	}
}

// POST /admin/cs-contacts — create or update.
func SaveCSContact(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contact models.CSContact
		if err := c.ShouldBindJSON(&contact); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.PhoneNumber) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required"})
			return
		}
		if contact.ID == "" {
			contact.ID = uuid.NewString()
		}
		if err := s.SaveCSContact(contact); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact"})
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

// DELETE /admin/cs-contacts/:id
func DeleteCSContact(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact ID is required"})
			return
		}
		if err := s.DeleteCSContact(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
	}
}

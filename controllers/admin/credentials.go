package admincontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/store"
)

type UpdateCredentialsInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Username        string `json:"username" binding:"required"`
	NewPassword     string `json:"new_password"`
}

// PUT /admin/credentials
//
// Requires the current password before changing the login. An empty new
// password keeps the existing one.
func UpdateCredentials(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		creds, err := s.GetAdminCredentials()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(input.CurrentPassword)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}

		updated := models.AdminCredentials{
			ID:           models.AdminCredentialsID,
			Username:     strings.TrimSpace(input.Username),
			PasswordHash: creds.PasswordHash,
		}
		if updated.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
			return
		}
		if input.NewPassword != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			updated.PasswordHash = string(hash)
		}

		if err := s.SaveAdminCredentials(updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Credentials updated"})
	}
}

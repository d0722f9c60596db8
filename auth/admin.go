package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jarvnw/website-umkm-store/store"
)

const adminSessionTTL = 24 * time.Hour

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin/login
//
// Credentials live in the admin_config singleton with the password bcrypt
// hashed. A successful login returns a short-lived admin JWT.
func AdminLogin(s *store.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		creds, err := s.GetAdminCredentials()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load credentials"})
			return
		}

		if req.Username != creds.Username ||
			bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		expiresAt := time.Now().Add(adminSessionTTL)
		claims := jwt.MapClaims{
			"role": "admin",
			"sub":  creds.Username,
			"exp":  expiresAt.Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

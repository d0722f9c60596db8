package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/services/media"
)

// GET /admin/upload/auth
//
// Mints a short-lived signed ticket for a direct browser upload to the media
// CDN. The file bytes never pass through this service.
func GetUploadTicket(signer *media.Signer, publicKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := signer.NewTicket()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload ticket"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     ticket.Token,
			"expire":    ticket.Expire,
			"signature": ticket.Signature,
			"publicKey": publicKey,
		})
	}
}

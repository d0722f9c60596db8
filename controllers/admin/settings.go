package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/services/socialproof"
	"github.com/jarvnw/website-umkm-store/store"
)

// GET /admin/settings
func GetSiteSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.GetSiteSettings()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// POST /admin/settings
//
// Saving reconfigures the social-proof scheduler, so toggling the feature or
// editing the name pool takes effect without a restart.
func SaveSiteSettings(s *store.Store, scheduler *socialproof.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := s.SaveSiteSettings(settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		scheduler.Configure(socialproof.ConfigFromSettings(settings))
		c.JSON(http.StatusOK, settings)
	}
}

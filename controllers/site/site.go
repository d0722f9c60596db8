package sitecontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cartengine "github.com/jarvnw/website-umkm-store/services/cart"
	"github.com/jarvnw/website-umkm-store/services/promo"
	"github.com/jarvnw/website-umkm-store/store"
)

// GET /store/settings
//
// Public settings payload plus the computed promotion countdown, so clients
// render the banner without re-deriving the window.
func GetSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.GetSiteSettings()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"settings":    settings,
			"promoActive": promo.Active(settings.PromoTitle, settings.PromoEndAt, now),
			"promoLeft":   promo.Countdown(settings.PromoEndAt, now),
		})
	}
}

// GET /store/testimonials — active testimonials only.
func GetTestimonials(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := s.GetTestimonials()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		active := testimonials[:0]
		for _, t := range testimonials {
			if t.IsActive {
				active = append(active, t)
			}
		}
		c.JSON(http.StatusOK, active)
	}
}

// GET /store/contact-link
//
// The floating-button hand-off: a wa.me inquiry link routed to a random
// active CS contact. 409 when nobody is active, so the client hides the
// button instead of dead-linking.
func GetContactLink(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := s.GetCSContacts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		contact, err := cartengine.PickRandomActiveContact(contacts)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "No customer-service contact is active right now"})
			return
		}

		settings, err := s.GetSiteSettings()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		message := cartengine.InquiryMessage(contact, settings.SiteName)
		c.JSON(http.StatusOK, gin.H{
			"contact": contact,
			"message": message,
			"link":    cartengine.WhatsAppLink(contact.PhoneNumber, message),
		})
	}
}

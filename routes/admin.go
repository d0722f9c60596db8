package routes

import (
	"github.com/gin-gonic/gin"

	admincontroller "github.com/jarvnw/website-umkm-store/controllers/admin"
	productcontroller "github.com/jarvnw/website-umkm-store/controllers/product"
	"github.com/jarvnw/website-umkm-store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin JWT.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdmin(deps.Config.JWTSecret))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(deps.Store))
			productAdmin.POST("", productcontroller.SaveProduct(deps.Store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Store))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.Store))
		}

		contactAdmin := adminGroup.Group("/cs-contacts")
		{
			contactAdmin.GET("", admincontroller.GetCSContacts(deps.Store))
			contactAdmin.POST("", admincontroller.SaveCSContact(deps.Store))
			contactAdmin.DELETE("/:id", admincontroller.DeleteCSContact(deps.Store))
		}

		testimonialAdmin := adminGroup.Group("/testimonials")
		{
			testimonialAdmin.GET("", admincontroller.GetTestimonials(deps.Store))
			testimonialAdmin.POST("", admincontroller.SaveTestimonial(deps.Store))
			testimonialAdmin.DELETE("/:id", admincontroller.DeleteTestimonial(deps.Store))
		}

		adminGroup.GET("/settings", admincontroller.GetSiteSettings(deps.Store))
		adminGroup.POST("/settings", admincontroller.SaveSiteSettings(deps.Store, deps.Scheduler))
		adminGroup.PUT("/credentials", admincontroller.UpdateCredentials(deps.Store))
		adminGroup.GET("/upload/auth", admincontroller.GetUploadTicket(deps.Signer, deps.Config.ImageKitPublicKey))
	}
}

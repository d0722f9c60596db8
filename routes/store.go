package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/jarvnw/website-umkm-store/controllers/cart"
	productcontroller "github.com/jarvnw/website-umkm-store/controllers/product"
	sitecontroller "github.com/jarvnw/website-umkm-store/controllers/site"
	"github.com/jarvnw/website-umkm-store/middleware"
)

// SetupStoreRoutes registers the "/store/*" endpoints. Catalog, settings and
// testimonials are public; the cart requires a guest session token.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	storeGroup := r.Group("/store")
	{
		storeGroup.GET("/products", productcontroller.GetProducts(deps.Store))
		storeGroup.GET("/products/:id", productcontroller.GetProductByID(deps.Store))
		storeGroup.GET("/products/:id/related", productcontroller.GetRelatedProducts(deps.Store))

		storeGroup.GET("/settings", sitecontroller.GetSettings(deps.Store))
		storeGroup.GET("/testimonials", sitecontroller.GetTestimonials(deps.Store))
		storeGroup.GET("/contact-link", sitecontroller.GetContactLink(deps.Store))

		cartGroup := storeGroup.Group("/cart")
		cartGroup.Use(middleware.ValidateSession(deps.Config.JWTSecret))
		{
			cartGroup.GET("", cartcontroller.GetCart(deps.Store))
			cartGroup.POST("", cartcontroller.AddToCart(deps.Store))
			cartGroup.PUT("", cartcontroller.UpdateQuantity(deps.Store))
			cartGroup.DELETE("/:product_id", cartcontroller.RemoveFromCart(deps.Store))
			cartGroup.DELETE("", cartcontroller.ClearCart(deps.Store))
			cartGroup.POST("/checkout", cartcontroller.Checkout(deps.Store))
		}
	}
}

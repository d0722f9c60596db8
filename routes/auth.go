package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(deps.Config.JWTSecret))
		authGroup.POST("/admin/login", auth.AdminLogin(deps.Store, deps.Config.JWTSecret))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jarvnw/website-umkm-store/config"
	socialproofcontroller "github.com/jarvnw/website-umkm-store/controllers/socialproof"
	"github.com/jarvnw/website-umkm-store/services/media"
	"github.com/jarvnw/website-umkm-store/services/socialproof"
	"github.com/jarvnw/website-umkm-store/store"
)

// Deps carries everything the route groups need wired in.
type Deps struct {
	Config    *config.Config
	Store     *store.Store
	Signer    *media.Signer
	Scheduler *socialproof.Scheduler
	Hub       *socialproofcontroller.Hub
}

// SetupRoutes is the single entry-point that wires up the Auth, Store and
// Admin route groups plus the social-proof websocket.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth (no middleware)
	SetupAuthRoutes(r, deps)

	// Storefront (public reads; cart behind a guest session token)
	SetupStoreRoutes(r, deps)

	// Back office (admin JWT)
	SetupAdminRoutes(r, deps)

	// Social-proof popup stream
	r.GET("/ws/social-proof", deps.Hub.Stream)
}

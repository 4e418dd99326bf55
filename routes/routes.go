package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	"github.com/YannikAckermann/Vintage-Store/notify"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart/checkout, order and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager, checkouts *checkout.Manager, hub *notify.Hub) {
	// Public catalog + notification stream (no middleware)
	SetupStorefrontRoutes(r, db, hub)

	// Session-scoped cart and checkout
	SetupCartRoutes(r, db, carts, checkouts)
	SetupCheckoutRoutes(r, carts, checkouts)
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}

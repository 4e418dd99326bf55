package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/YannikAckermann/Vintage-Store/controllers/order"
	"github.com/YannikAckermann/Vintage-Store/middleware"
)

// SetupOrderRoutes registers the session-facing order history endpoint.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.EnsureSession)
	{
		orders.GET("", orderControllers.GetSessionOrders(db)) // GET /orders
	}
}

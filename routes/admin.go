package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/YannikAckermann/Vintage-Store/controllers/order"
	productcontroller "github.com/YannikAckermann/Vintage-Store/controllers/product"
	"github.com/YannikAckermann/Vintage-Store/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}

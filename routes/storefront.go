package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/YannikAckermann/Vintage-Store/controllers/product"
	"github.com/YannikAckermann/Vintage-Store/notify"
)

// SetupStorefrontRoutes registers the public catalog endpoints and the
// websocket notification stream.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, hub *notify.Hub) {
	r.GET("/products", productcontroller.GetProducts(db))          // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(db))   // GET /products/:id
	r.GET("/ws", hub.Handler)                                      // GET /ws
}

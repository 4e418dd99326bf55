package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	cartControllers "github.com/YannikAckermann/Vintage-Store/controllers/cart"
	"github.com/YannikAckermann/Vintage-Store/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires the session
// middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager, checkouts *checkout.Manager) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.EnsureSession)
	{
		cartGroup.GET("", cartControllers.GetCart(carts))                              // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(db, carts))               // POST /cart/items
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(carts))     // PUT /cart/items/:product_id
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(carts))  // DELETE /cart/items/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(carts))                         // DELETE /cart
		cartGroup.PUT("/open", cartControllers.SetCartOpen(carts, checkouts))          // PUT /cart/open
	}
}

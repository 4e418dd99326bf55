package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	checkoutControllers "github.com/YannikAckermann/Vintage-Store/controllers/checkout"
	"github.com/YannikAckermann/Vintage-Store/middleware"
)

// SetupCheckoutRoutes registers all "/checkout/*" endpoints. Requires the
// session middleware.
func SetupCheckoutRoutes(r *gin.Engine, carts *cart.Manager, checkouts *checkout.Manager) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.EnsureSession)
	{
		checkoutGroup.GET("", checkoutControllers.GetCheckout(carts, checkouts))            // GET /checkout
		checkoutGroup.POST("/advance", checkoutControllers.Advance(carts, checkouts))       // POST /checkout/advance
		checkoutGroup.POST("/back", checkoutControllers.Back(carts, checkouts))             // POST /checkout/back
		checkoutGroup.PUT("/information", checkoutControllers.PutInformation(carts, checkouts)) // PUT /checkout/information
		checkoutGroup.PUT("/shipping", checkoutControllers.PutShipping(carts, checkouts))   // PUT /checkout/shipping
		checkoutGroup.PUT("/payment", checkoutControllers.PutPayment(carts, checkouts))     // PUT /checkout/payment
	}
}

package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	"github.com/YannikAckermann/Vintage-Store/middleware"
	"github.com/YannikAckermann/Vintage-Store/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type SetOpenInput struct {
	Open *bool `json:"open" binding:"required"`
}

// cartResponse is the full cart view a client renders from.
func cartResponse(s *cart.Store) gin.H {
	items := s.Items()
	if items == nil {
		items = []models.CartLineItem{}
	}
	return gin.H{
		"items":       items,
		"total_items": s.TotalItems(),
		"subtotal":    s.Subtotal(),
		"is_open":     s.IsOpen(),
	}
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.Get(middleware.SessionID(c))
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// POST /cart/items
// Validates the product against the catalog, then adds it to the session's
// cart; an existing line gets its quantity incremented.
func AddCartItem(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		store := carts.Get(middleware.SessionID(c))
		if err := store.AddItem(product, input.Quantity); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cartResponse(store))
	}
}

// PUT /cart/items/:product_id
// Sets the line's quantity to an absolute value; zero or less removes it.
func UpdateCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Get(middleware.SessionID(c))
		store.UpdateQuantity(productID, input.Quantity)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /cart/items/:product_id
func DeleteCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		store := carts.Get(middleware.SessionID(c))
		store.RemoveItem(productID)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.Get(middleware.SessionID(c))
		store.Clear()
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// PUT /cart/open
// Toggles the panel flag. Closing the panel schedules the checkout reset
// after the close-animation grace period.
func SetCartOpen(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetOpenInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		store := carts.Get(sessionID)
		store.SetOpen(*input.Open)
		if !*input.Open {
			checkouts.ScheduleReset(sessionID)
		}
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	return uint(id), err
}

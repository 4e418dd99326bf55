package orderControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/checkout"
	"github.com/YannikAckermann/Vintage-Store/middleware"
	"github.com/YannikAckermann/Vintage-Store/models"
)

// OrderBroadcaster announces a confirmed order to connected clients.
type OrderBroadcaster interface {
	OrderConfirmed(orderRef string)
}

// Generate unique order reference, e.g. "20250908130500-<uuid4>".
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Recorder persists one completed checkout as an order row. It is wired as
// the checkout manager's completion callback and runs exactly once per
// order. Failures are logged; the confirmation the shopper sees does not
// depend on them.
func Recorder(db *gorm.DB, broadcaster OrderBroadcaster) func(sessionID string, s checkout.Summary) {
	return func(sessionID string, s checkout.Summary) {
		items := make([]models.OrderItem, 0, len(s.Items))
		for _, item := range s.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ID,
				Name:      item.Name,
				Image:     item.Image,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}

		order := models.Order{
			OrderRef:       generateOrderRef(),
			SessionID:      sessionID,
			Items:          items,
			FirstName:      s.Contact.FirstName,
			LastName:       s.Contact.LastName,
			Email:          s.Contact.Email,
			Phone:          s.Contact.Phone,
			Address:        s.Contact.Address,
			City:           s.Contact.City,
			PostalCode:     s.Contact.PostalCode,
			Canton:         s.Contact.Canton,
			ShippingMethod: string(s.ShippingMethod),
			PaymentMethod:  string(s.PaymentMethod),
			Subtotal:       s.Subtotal,
			ShippingCost:   s.ShippingCost,
			Total:          s.Total,
			CreatedAt:      time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			log.Printf("order: failed to record %s: %v", order.OrderRef, err)
			return
		}
		if broadcaster != nil {
			broadcaster.OrderConfirmed(order.OrderRef)
		}
	}
}

// GET /orders — the session's own orders, newest first.
func GetSessionOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("session_id = ?", middleware.SessionID(c)).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders — every order, newest first.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

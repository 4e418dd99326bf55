package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/checkout"
	"github.com/YannikAckermann/Vintage-Store/currency"
	"github.com/YannikAckermann/Vintage-Store/middleware"
)

type SelectShippingInput struct {
	Method string `json:"method" binding:"required"`
}

type SelectPaymentInput struct {
	Method string                `json:"method" binding:"required"`
	Card   *checkout.CardDetails `json:"card,omitempty"`
}

// machine resolves the session's checkout machine over its cart store.
func machine(c *gin.Context, carts *cart.Manager, checkouts *checkout.Manager) (*checkout.Machine, *cart.Store) {
	sessionID := middleware.SessionID(c)
	store := carts.Get(sessionID)
	return checkouts.Get(sessionID, store), store
}

func stateResponse(m *checkout.Machine, store *cart.Store) gin.H {
	shippingOptions := make([]gin.H, 0, len(checkout.ShippingMethods()))
	for _, method := range checkout.ShippingMethods() {
		shippingOptions = append(shippingOptions, gin.H{
			"method":    method,
			"label":     method.Label(),
			"surcharge": currency.Format(method.Surcharge()),
			"estimate":  method.Estimate(),
		})
	}
	return gin.H{
		"step":             m.Step(),
		"processing":       m.Processing(),
		"contact":          m.Contact(),
		"shipping_method":  m.Shipping(),
		"payment_method":   m.Payment(),
		"shipping_options": shippingOptions,
		"payment_options":  checkout.PaymentMethods(),
		"subtotal":         store.Subtotal(),
		"shipping_cost":    currency.Format(m.Shipping().Surcharge()),
		"total":            m.Total(),
	}
}

// writeStepError maps machine errors onto HTTP statuses: precondition
// failures are 422, busy/terminal conflicts are 409.
func writeStepError(c *gin.Context, err error) {
	status := http.StatusUnprocessableEntity
	if errors.Is(err, checkout.ErrProcessing) || errors.Is(err, checkout.ErrOrderComplete) || errors.Is(err, checkout.ErrAtFirstStep) {
		status = http.StatusConflict
	}
	var fieldErr *checkout.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(status, gin.H{"error": err.Error(), "field": fieldErr.Field})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// GET /checkout
func GetCheckout(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, store := machine(c, carts, checkouts)
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

// POST /checkout/advance
// From the payment step this submits the order and begins the simulated
// payment; the state flips to confirmation once the delay elapses.
func Advance(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, store := machine(c, carts, checkouts)
		if err := m.Advance(); err != nil {
			writeStepError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

// POST /checkout/back
func Back(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, store := machine(c, carts, checkouts)
		if err := m.Back(); err != nil {
			writeStepError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

// PUT /checkout/information
// Saves the contact form; completeness is checked on advance, so partial
// saves succeed.
func PutInformation(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contact checkout.Contact
		if err := c.ShouldBindJSON(&contact); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		m, store := machine(c, carts, checkouts)
		if err := m.SetContact(contact); err != nil {
			writeStepError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

// PUT /checkout/shipping
func PutShipping(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SelectShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method, err := checkout.ParseShippingMethod(input.Method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		m, store := machine(c, carts, checkouts)
		if err := m.SelectShipping(method); err != nil {
			writeStepError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

// PUT /checkout/payment
func PutPayment(carts *cart.Manager, checkouts *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SelectPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method, err := checkout.ParsePaymentMethod(input.Method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		m, store := machine(c, carts, checkouts)
		if err := m.SelectPayment(method, input.Card); err != nil {
			writeStepError(c, err)
			return
		}
		c.JSON(http.StatusOK, stateResponse(m, store))
	}
}

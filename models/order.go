package models

import "time"

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	SessionID      string      `gorm:"index;not null" json:"session_id"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	PostalCode     string      `json:"postal_code"`
	Canton         string      `json:"canton"`
	ShippingMethod string      `json:"shipping_method"`
	PaymentMethod  string      `json:"payment_method"`
	Subtotal       string      `json:"subtotal"`      // "Fr. 25.50"
	ShippingCost   string      `json:"shipping_cost"` // "Fr. 7.90"
	Total          string      `json:"total"`         // "Fr. 33.40"
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderID   uint   `gorm:"index" json:"-"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

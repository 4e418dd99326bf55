package models

import "time"

// CartLineItem is one product entry in a session's cart. The JSON shape is
// the cart's wire and snapshot format; display fields are copied from the
// catalog at add time and never re-fetched.
type CartLineItem struct {
	ID          uint   `json:"id"` // product id, unique within a cart
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // display form, e.g. "Fr. 78"
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"` // always >= 1; a line at 0 is removed
}

// CartSnapshot is the durable storage slot for one session's cart: a single
// key holding the JSON-serialized line item array. Written on every items
// mutation, read once when the session's store is first constructed.
type CartSnapshot struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

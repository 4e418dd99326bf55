package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPriority ShippingMethod = "priority"
)

type shippingInfo struct {
	label     string
	surcharge decimal.Decimal
	estimate  string
}

var shippingMethods = map[ShippingMethod]shippingInfo{
	ShippingStandard: {"Standard Versand", decimal.RequireFromString("7.90"), "Lieferung in 2-4 Werktagen"},
	ShippingExpress:  {"Express Versand", decimal.RequireFromString("12.90"), "Lieferung in 1-2 Werktagen"},
	ShippingPriority: {"Priority Versand", decimal.RequireFromString("18.90"), "Lieferung am nächsten Werktag"},
}

// Surcharge is the flat fee the method adds on top of the cart subtotal.
func (m ShippingMethod) Surcharge() decimal.Decimal {
	return shippingMethods[m].surcharge
}

func (m ShippingMethod) Label() string    { return shippingMethods[m].label }
func (m ShippingMethod) Estimate() string { return shippingMethods[m].estimate }

func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch ShippingMethod(strings.ToLower(s)) {
	case ShippingStandard:
		return ShippingStandard, nil
	case ShippingExpress:
		return ShippingExpress, nil
	case ShippingPriority:
		return ShippingPriority, nil
	default:
		return "", ErrUnknownShippingMethod
	}
}

// ShippingMethods lists the selectable methods in display order.
func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{ShippingStandard, ShippingExpress, ShippingPriority}
}

type PaymentMethod string

const (
	PaymentTwint       PaymentMethod = "twint"
	PaymentPostFinance PaymentMethod = "postfinance"
	PaymentCard        PaymentMethod = "card"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentTwint:
		return PaymentTwint, nil
	case PaymentPostFinance:
		return PaymentPostFinance, nil
	case PaymentCard:
		return PaymentCard, nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentTwint, PaymentPostFinance, PaymentCard}
}

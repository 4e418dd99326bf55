package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrNoPaymentMethod       = errors.New("no payment method selected")
	ErrProcessing            = errors.New("payment is being processed")
	ErrOrderComplete         = errors.New("order is already complete")
	ErrAtFirstStep           = errors.New("already at the first step")
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
)

// FieldError reports a required contact field left empty when advancing
// from the information step.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

package domain

import "errors"

var (
	ErrInvalidCart         = errors.New("cart is empty or malformed")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrProductNotFound     = errors.New("product not found")
	ErrBuyerNotFound       = errors.New("buyer not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPageNotFound        = errors.New("page not found")
	ErrPaymentNotPaid      = errors.New("payment has not been paid yet")
	ErrPaymentNotRetryable = errors.New("payment cannot be retried")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)

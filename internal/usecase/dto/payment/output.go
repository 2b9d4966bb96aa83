package paymentdto

import "github.com/streetmarket/payment-service/internal/domain"

// PlacementOutput is what the buyer needs to finish checkout: the gateway
// handle and the confirmation redirect.
type PlacementOutput struct {
	OrderRef        string
	TransactionID   string
	GatewayStatus   string
	ConfirmationURL string
	Total           float64
	Currency        string
	Payments        []*domain.Payment
}

type RetryOutput struct {
	PaymentID       string
	TransactionID   string
	GatewayStatus   string
	ConfirmationURL string
}

type PaymentPageOutput struct {
	Payments     []*domain.Payment
	Total        int64
	CurrentPage  int
	MaxPageCount int
}

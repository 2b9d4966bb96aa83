package paymentdto

import "github.com/streetmarket/payment-service/internal/usecase/pricing"

type PlaceOrderInput struct {
	BuyerID string
	Items   []pricing.CartItem
}

type RetryPaymentInput struct {
	BuyerID   string
	PaymentID string
}

type ConfirmReceiptInput struct {
	BuyerID   string
	PaymentID string
}

type HistoryInput struct {
	BuyerID string
	Page    int
	Limit   int
}

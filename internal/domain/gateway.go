package domain

import "context"

// Webhook event types delivered by YooKassa.
const (
	EventWaitingForCapture = "payment.waiting_for_capture"
	EventSucceeded         = "payment.succeeded"
	EventCanceled          = "payment.canceled"
)

// Gateway-side payment statuses this service inspects.
const (
	GatewayStatusWaitingForCapture = "waiting_for_capture"
)

// GatewayPayment is the handle returned by one create-payment call.
type GatewayPayment struct {
	ID              string
	Status          string
	ConfirmationURL string
	Amount          float64
	Currency        string
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, amount float64, currency, description string) (*GatewayPayment, error)
	CapturePayment(ctx context.Context, transactionID string, amount float64, currency string) error
}

// BuyerDirectory is the user-service boundary. Only the delivery address is
// read, at placement time.
type BuyerDirectory interface {
	GetBuyer(ctx context.Context, buyerID string) (*Buyer, error)
}

// WebhookEvent is the gateway callback payload.
type WebhookEvent struct {
	Event  string        `json:"event"`
	Object WebhookObject `json:"object"`
}

type WebhookObject struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Amount GatewayAmount `json:"amount"`
}

// GatewayAmount carries money the way YooKassa does: a decimal string plus
// an ISO currency code.
type GatewayAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

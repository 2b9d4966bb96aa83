package domain

import "time"

type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusPaid     PaymentStatus = "paid"
	StatusFailed   PaymentStatus = "failed"
	StatusReceived PaymentStatus = "received"
)

// Payment is one order line: a single product/quantity pair bought by one
// buyer. All lines of one placement share OrderRef and start out with the
// same gateway transaction id. Amount is fixed at creation from the catalog
// snapshot and never recomputed.
type Payment struct {
	ID            string
	OrderRef      string
	BuyerID       string
	ProductID     string
	StoreID       string
	ProductName   string
	Quantity      int
	Amount        float64
	Currency      string
	TransactionID string
	Address       string
	DeliveryDate  *time.Time
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

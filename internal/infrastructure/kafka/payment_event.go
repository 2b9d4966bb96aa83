package kafka

// PaymentEvent is the message published on every payment status change.
// Downstream consumers (notifications, store analytics) key off BuyerID.
type PaymentEvent struct {
	PaymentID string  `json:"payment_id"`
	OrderRef  string  `json:"order_ref"`
	BuyerID   string  `json:"buyer_id"`
	ProductID string  `json:"product_id"`
	StoreID   string  `json:"store_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

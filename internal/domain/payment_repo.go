package domain

import "time"

type PaymentRepository interface {
	// CreatePayments persists all lines of one placement in a single
	// transaction, recording each line's initial transaction handle.
	// Either every line is created or none is.
	CreatePayments(payments []*Payment) error
	GetPaymentByID(paymentID string) (*Payment, error)
	// GetPaymentsByTransactionID resolves a gateway handle to its lines
	// through the transaction log, so handles superseded by a retry still
	// correlate.
	GetPaymentsByTransactionID(transactionID string) ([]*Payment, error)
	// MarkPaid flips a pending line to paid and decrements the product
	// stock by the line quantity in one transaction. Returns
	// ErrPaymentNotPending if the line is no longer pending and
	// ErrInsufficientStock if the decrement would underflow; in both
	// cases nothing is mutated.
	MarkPaid(paymentID, productID string, quantity int) error
	MarkFailed(paymentID string) error
	MarkReceived(paymentID string) error
	// ResetForRetry points the line at a freshly issued gateway handle,
	// resets the delivery window and returns the status to pending,
	// keeping the line's identity. The old handle stays in the
	// transaction log.
	ResetForRetry(paymentID, transactionID string, deliveryDate time.Time) error
	GetPaymentsByBuyerID(buyerID string, statuses []PaymentStatus, page, limit int) ([]*Payment, int64, error)
	ClearExpiredDeliveryDates(now time.Time) (int64, error)
}

type ProductRepository interface {
	GetProductSnapshot(productID string) (*ProductSnapshot, error)
}

type DiscountRepository interface {
	DeleteExpired(now time.Time) (int64, error)
}

package models

import (
	"time"

	"github.com/streetmarket/payment-service/internal/domain"
)

type PaymentModel struct {
	ID            string               `gorm:"primaryKey;type:uuid"`
	OrderRef      string               `gorm:"index:idx_order_ref"`
	BuyerID       string               `gorm:"type:uuid;index:idx_buyer_status"`
	ProductID     string               `gorm:"type:uuid;index"`
	StoreID       string               `gorm:"type:uuid"`
	Quantity      int
	Amount        float64
	Currency      string
	TransactionID string               `gorm:"index:idx_transaction"`
	Address       string
	DeliveryDate  *time.Time           `gorm:"index:idx_delivery_date"`
	Status        domain.PaymentStatus `gorm:"index:idx_buyer_status"`
	CreatedAt     time.Time            `gorm:"index:idx_created_at"`
	UpdatedAt     time.Time
	Product       ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// PaymentTransactionModel is the append-only log of every gateway handle
// ever issued for a line. Webhook correlation resolves through this table so
// a handle superseded by a retry still maps back to its line.
type PaymentTransactionModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	PaymentID     string    `gorm:"type:uuid;not null;index"`
	TransactionID string    `gorm:"not null;index:idx_tx_handle"`
	CreatedAt     time.Time `gorm:"not null"`
}

package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streetmarket/payment-service/internal/domain"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/mappers"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayments(payments []*domain.Payment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, payment := range payments {
			if err := tx.Create(mappers.ToGORMPayment(payment)).Error; err != nil {
				return err
			}
			logRow := models.PaymentTransactionModel{
				ID:            uuid.New().String(),
				PaymentID:     payment.ID,
				TransactionID: payment.TransactionID,
				CreatedAt:     time.Now(),
			}
			if err := tx.Create(&logRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.Preload("Product").First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByTransactionID(transactionID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.DB.Model(&models.PaymentModel{}).
		Preload("Product").
		Joins("JOIN payment_transaction_models ON payment_transaction_models.payment_id = payment_models.id").
		Where("payment_transaction_models.transaction_id = ?", transactionID).
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i, paymentModel := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModel)
	}

	return payments, nil
}

// MarkPaid claims the pending line and decrements stock in one transaction.
// The status flip goes first: its WHERE clause is what makes a duplicate
// webhook delivery a no-op, and a refused decrement rolls the flip back so
// the line stays pending.
func (r *DefaultPaymentRepository) MarkPaid(paymentID, productID string, quantity int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PaymentModel{}).
			Where("id = ? AND status = ?", paymentID, domain.StatusPending).
			Update("status", domain.StatusPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPaymentNotPending
		}

		res = tx.Model(&models.ProductModel{}).
			Where("id = ? AND quantity >= ?", productID, quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", productID, domain.ErrInsufficientStock)
		}

		return nil
	})
}

// MarkFailed is idempotent: a line that is no longer pending (already
// failed, or paid/received in the meantime) is left alone.
func (r *DefaultPaymentRepository) MarkFailed(paymentID string) error {
	return r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", paymentID, domain.StatusPending).
		Update("status", domain.StatusFailed).Error
}

func (r *DefaultPaymentRepository) MarkReceived(paymentID string) error {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", paymentID, domain.StatusPaid).
		Update("status", domain.StatusReceived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentNotPaid
	}
	return nil
}

func (r *DefaultPaymentRepository) ResetForRetry(paymentID, transactionID string, deliveryDate time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PaymentModel{}).
			Where("id = ? AND status IN (?)", paymentID, []domain.PaymentStatus{domain.StatusPending, domain.StatusFailed}).
			Updates(map[string]interface{}{
				"transaction_id": transactionID,
				"status":         domain.StatusPending,
				"delivery_date":  deliveryDate,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPaymentNotRetryable
		}

		logRow := models.PaymentTransactionModel{
			ID:            uuid.New().String(),
			PaymentID:     paymentID,
			TransactionID: transactionID,
			CreatedAt:     time.Now(),
		}
		return tx.Create(&logRow).Error
	})
}

func (r *DefaultPaymentRepository) GetPaymentsByBuyerID(
	buyerID string,
	statuses []domain.PaymentStatus,
	page, limit int,
) ([]*domain.Payment, int64, error) {
	var paymentModels []models.PaymentModel
	var total int64

	baseQuery := r.DB.Model(&models.PaymentModel{}).
		Where("buyer_id = ?", buyerID).
		Where("status IN (?)", statuses)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&paymentModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payments: %w", err)
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i, paymentModel := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModel)
	}

	return payments, total, nil
}

func (r *DefaultPaymentRepository) ClearExpiredDeliveryDates(now time.Time) (int64, error) {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("delivery_date IS NOT NULL AND delivery_date < ?", now).
		Update("delivery_date", nil)
	return res.RowsAffected, res.Error
}

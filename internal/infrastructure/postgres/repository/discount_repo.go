package repository

import (
	"time"

	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDiscountRepository struct {
	DB *gorm.DB
}

func NewDefaultDiscountRepository(db *gorm.DB) *DefaultDiscountRepository {
	return &DefaultDiscountRepository{DB: db}
}

// DeleteExpired permanently removes discounts whose window has closed.
// Amounts on already-placed lines are unaffected: they were snapshotted at
// order creation.
func (r *DefaultDiscountRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.DB.Where("end_date < ?", now).Delete(&models.DiscountModel{})
	return res.RowsAffected, res.Error
}

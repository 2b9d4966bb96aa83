package repository

import (
	"errors"
	"time"

	"github.com/streetmarket/payment-service/internal/domain"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/mappers"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

// GetProductSnapshot reads the product row plus its discount, if one is
// active right now. Expired-but-unswept discounts are filtered out here, so
// the discount sweep is pure storage hygiene and never affects pricing.
func (r *DefaultProductRepository) GetProductSnapshot(productID string) (*domain.ProductSnapshot, error) {
	var product models.ProductModel
	if err := r.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	now := time.Now()
	var discount models.DiscountModel
	err := r.DB.
		Where("product_id = ? AND start_date <= ? AND end_date >= ?", productID, now, now).
		First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mappers.ToProductSnapshot(&product, nil), nil
		}
		return nil, err
	}

	return mappers.ToProductSnapshot(&product, &discount), nil
}

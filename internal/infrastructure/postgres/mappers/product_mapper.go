package mappers

import (
	"github.com/streetmarket/payment-service/internal/domain"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/models"
)

func ToProductSnapshot(model *models.ProductModel, discount *models.DiscountModel) *domain.ProductSnapshot {
	snapshot := &domain.ProductSnapshot{
		ID:       model.ID,
		StoreID:  model.StoreID,
		Name:     model.Name,
		Price:    model.Price,
		Quantity: model.Quantity,
	}
	if discount != nil {
		snapshot.Discount = ToDomainDiscount(discount)
	}
	return snapshot
}

func ToDomainDiscount(model *models.DiscountModel) *domain.Discount {
	return &domain.Discount{
		ID:                 model.ID,
		ProductID:          model.ProductID,
		StoreID:            model.StoreID,
		DiscountPercentage: model.DiscountPercentage,
		DiscountPrice:      model.DiscountPrice,
		StartDate:          model.StartDate,
		EndDate:            model.EndDate,
	}
}

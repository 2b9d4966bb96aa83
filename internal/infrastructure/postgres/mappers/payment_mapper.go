package mappers

import (
	"github.com/streetmarket/payment-service/internal/domain"
	"github.com/streetmarket/payment-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            model.ID,
		OrderRef:      model.OrderRef,
		BuyerID:       model.BuyerID,
		ProductID:     model.ProductID,
		StoreID:       model.StoreID,
		ProductName:   model.Product.Name,
		Quantity:      model.Quantity,
		Amount:        model.Amount,
		Currency:      model.Currency,
		TransactionID: model.TransactionID,
		Address:       model.Address,
		DeliveryDate:  model.DeliveryDate,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            payment.ID,
		OrderRef:      payment.OrderRef,
		BuyerID:       payment.BuyerID,
		ProductID:     payment.ProductID,
		StoreID:       payment.StoreID,
		Quantity:      payment.Quantity,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		TransactionID: payment.TransactionID,
		Address:       payment.Address,
		DeliveryDate:  payment.DeliveryDate,
		Status:        payment.Status,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

package payment

import (
	"math"

	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
)

// GetHistory returns the buyer's open and settled lines: everything not yet
// confirmed received.
func (uc *DefaultPaymentUsecase) GetHistory(input *paymentdto.HistoryInput) (*paymentdto.PaymentPageOutput, error) {
	statuses := []domain.PaymentStatus{domain.StatusPending, domain.StatusPaid, domain.StatusFailed}
	return uc.pageByStatuses(input, statuses)
}

// GetReceived returns the buyer's completed purchases.
func (uc *DefaultPaymentUsecase) GetReceived(input *paymentdto.HistoryInput) (*paymentdto.PaymentPageOutput, error) {
	statuses := []domain.PaymentStatus{domain.StatusReceived}
	return uc.pageByStatuses(input, statuses)
}

func (uc *DefaultPaymentUsecase) pageByStatuses(input *paymentdto.HistoryInput, statuses []domain.PaymentStatus) (*paymentdto.PaymentPageOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	payments, total, err := uc.PaymentRepo.GetPaymentsByBuyerID(input.BuyerID, statuses, page, limit)
	if err != nil {
		return nil, err
	}

	maxPageCount := int(math.Ceil(float64(total) / float64(limit)))
	if page > 1 && page > maxPageCount {
		return nil, domain.ErrPageNotFound
	}

	return &paymentdto.PaymentPageOutput{
		Payments:     payments,
		Total:        total,
		CurrentPage:  page,
		MaxPageCount: maxPageCount,
	}, nil
}

package payment

import (
	"log/slog"

	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
)

// ConfirmReceipt marks a paid line as received by the buyer. Terminal: no
// transition leaves the received state.
func (uc *DefaultPaymentUsecase) ConfirmReceipt(input *paymentdto.ConfirmReceiptInput) error {
	p, err := uc.PaymentRepo.GetPaymentByID(input.PaymentID)
	if err != nil {
		return err
	}
	if p.BuyerID != input.BuyerID {
		return domain.ErrPaymentNotFound
	}

	if err := uc.PaymentRepo.MarkReceived(p.ID); err != nil {
		return err
	}

	p.Status = domain.StatusReceived
	uc.Metrics.RecordReceived(p.StoreID)
	uc.publishEvent(p)

	slog.Info("receipt confirmed", "payment_id", p.ID, "buyer_id", p.BuyerID)
	return nil
}

package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
)

// RetryPayment opens a fresh gateway payment for one line and supersedes
// its old handle. Old webhook deliveries stay correlated through the
// transaction log, so a late cancel of the previous handle cannot fail the
// retried line.
func (uc *DefaultPaymentUsecase) RetryPayment(ctx context.Context, input *paymentdto.RetryPaymentInput) (*paymentdto.RetryOutput, error) {
	p, err := uc.PaymentRepo.GetPaymentByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	if p.BuyerID != input.BuyerID {
		return nil, domain.ErrPaymentNotFound
	}
	if p.Status == domain.StatusPaid || p.Status == domain.StatusReceived {
		return nil, domain.ErrPaymentNotRetryable
	}

	gatewayPayment, err := uc.Gateway.CreatePayment(ctx, p.Amount, p.Currency,
		fmt.Sprintf("Order %s retry", p.OrderRef))
	if err != nil {
		return nil, err
	}

	deliveryDate := uc.deliveryDue(time.Now())
	if err := uc.PaymentRepo.ResetForRetry(p.ID, gatewayPayment.ID, deliveryDate); err != nil {
		return nil, err
	}

	uc.Metrics.RecordRetried(p.StoreID)

	slog.Info("payment retried",
		"payment_id", p.ID,
		"old_transaction_id", p.TransactionID,
		"new_transaction_id", gatewayPayment.ID)

	return &paymentdto.RetryOutput{
		PaymentID:       p.ID,
		TransactionID:   gatewayPayment.ID,
		GatewayStatus:   gatewayPayment.Status,
		ConfirmationURL: gatewayPayment.ConfirmationURL,
	}, nil
}

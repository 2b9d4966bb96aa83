package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
)

// PlaceOrder prices the cart, opens one gateway payment for the whole cart
// and records a pending payment line per product. All lines share the
// gateway handle: the webhook settles them together.
func (uc *DefaultPaymentUsecase) PlaceOrder(ctx context.Context, input *paymentdto.PlaceOrderInput) (*paymentdto.PlacementOutput, error) {
	startTime := time.Now()

	buyer, err := uc.Buyers.GetBuyer(ctx, input.BuyerID)
	if err != nil {
		return nil, err
	}

	lines, total, err := uc.Pricing.PriceCart(input.Items)
	if err != nil {
		return nil, err
	}

	orderRef, err := newOrderRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ref: %w", err)
	}

	gatewayPayment, err := uc.Gateway.CreatePayment(ctx, total, uc.Currency,
		fmt.Sprintf("Order %s", orderRef))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payments := make([]*domain.Payment, 0, len(lines))
	for _, line := range lines {
		deliveryDate := uc.deliveryDue(now)
		payments = append(payments, &domain.Payment{
			ID:            uuid.New().String(),
			OrderRef:      orderRef,
			BuyerID:       buyer.ID,
			ProductID:     line.ProductID,
			StoreID:       line.StoreID,
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			Amount:        line.Amount,
			Currency:      uc.Currency,
			TransactionID: gatewayPayment.ID,
			Address:       buyer.Address,
			DeliveryDate:  &deliveryDate,
			Status:        domain.StatusPending,
		})
	}

	if err := uc.PaymentRepo.CreatePayments(payments); err != nil {
		return nil, err
	}

	for _, p := range payments {
		uc.Metrics.RecordCreated(p.StoreID, p.Currency, p.Amount)
		uc.publishEvent(p)
	}
	uc.Metrics.RecordPlacementDuration(time.Since(startTime).Seconds())

	slog.Info("order placed",
		"order_ref", orderRef,
		"buyer_id", buyer.ID,
		"transaction_id", gatewayPayment.ID,
		"lines", len(payments),
		"total", total)

	return &paymentdto.PlacementOutput{
		OrderRef:        orderRef,
		TransactionID:   gatewayPayment.ID,
		GatewayStatus:   gatewayPayment.Status,
		ConfirmationURL: gatewayPayment.ConfirmationURL,
		Total:           total,
		Currency:        uc.Currency,
		Payments:        payments,
	}, nil
}

// deliveryDue picks a due date a few days out inside the configured window.
func (uc *DefaultPaymentUsecase) deliveryDue(from time.Time) time.Time {
	minDays := uc.Delivery.MinDays
	maxDays := uc.Delivery.MaxDays
	days := minDays
	if maxDays > minDays {
		days += rand.Intn(maxDays - minDays + 1)
	}

	return from.AddDate(0, 0, days)
}

func newOrderRef() (string, error) {
	gen, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}

	return gen(), nil
}

package payment

import (
	"context"
	"log/slog"

	"github.com/streetmarket/payment-service/internal/config"
	"github.com/streetmarket/payment-service/internal/domain"
	publisher "github.com/streetmarket/payment-service/internal/infrastructure/kafka"
	"github.com/streetmarket/payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
	"github.com/streetmarket/payment-service/internal/usecase/pricing"
)

type PaymentUsecase interface {
	PlaceOrder(ctx context.Context, input *paymentdto.PlaceOrderInput) (*paymentdto.PlacementOutput, error)
	RetryPayment(ctx context.Context, input *paymentdto.RetryPaymentInput) (*paymentdto.RetryOutput, error)
	ConfirmReceipt(input *paymentdto.ConfirmReceiptInput) error
	HandleGatewayEvent(ctx context.Context, event *domain.WebhookEvent) error

	GetHistory(input *paymentdto.HistoryInput) (*paymentdto.PaymentPageOutput, error)
	GetReceived(input *paymentdto.HistoryInput) (*paymentdto.PaymentPageOutput, error)
}

// PaymentEventPublisher pushes status-change events to the broker.
type PaymentEventPublisher interface {
	PublishPayment(event publisher.PaymentEvent) error
}

type DefaultPaymentUsecase struct {
	PaymentRepo domain.PaymentRepository
	Pricing     pricing.PricingUsecase
	Buyers      domain.BuyerDirectory
	Gateway     domain.PaymentGateway
	Publisher   PaymentEventPublisher
	Metrics     *metrics.PaymentMetrics
	Delivery    config.DeliveryWindow
	Currency    string
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	pricingUsecase pricing.PricingUsecase,
	buyers domain.BuyerDirectory,
	gateway domain.PaymentGateway,
	eventPublisher PaymentEventPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	delivery config.DeliveryWindow,
	currency string) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		PaymentRepo: paymentRepo,
		Pricing:     pricingUsecase,
		Buyers:      buyers,
		Gateway:     gateway,
		Publisher:   eventPublisher,
		Metrics:     paymentMetrics,
		Delivery:    delivery,
		Currency:    currency,
	}
}

func (uc *DefaultPaymentUsecase) publishEvent(p *domain.Payment) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.PaymentEvent) {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish payment event",
				"payment_id", event.PaymentID, "status", event.Status, "error", err.Error())
		}
	}(publisher.PaymentEvent{
		PaymentID: p.ID,
		OrderRef:  p.OrderRef,
		BuyerID:   p.BuyerID,
		ProductID: p.ProductID,
		StoreID:   p.StoreID,
		Status:    string(p.Status),
		Amount:    p.Amount,
		Currency:  p.Currency,
	})
}

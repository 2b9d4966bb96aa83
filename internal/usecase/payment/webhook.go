package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/streetmarket/payment-service/internal/domain"
)

// HandleGatewayEvent processes one webhook notification. The gateway retries
// until it sees a 2xx, so a nil return means "acknowledged, do not resend":
// duplicates, stale handles and unknown events all return nil. Only capture
// failures and stock conflicts surface an error to force redelivery.
func (uc *DefaultPaymentUsecase) HandleGatewayEvent(ctx context.Context, event *domain.WebhookEvent) error {
	switch event.Event {
	case domain.EventWaitingForCapture:
		return uc.handleWaitingForCapture(ctx, event)
	case domain.EventSucceeded:
		return uc.handleSucceeded(event)
	case domain.EventCanceled:
		return uc.handleCanceled(event)
	default:
		uc.Metrics.RecordWebhookEvent(event.Event, "ignored")
		slog.Warn("unknown webhook event", "event", event.Event)
		return nil
	}
}

func (uc *DefaultPaymentUsecase) handleWaitingForCapture(ctx context.Context, event *domain.WebhookEvent) error {
	if event.Object.Status != domain.GatewayStatusWaitingForCapture {
		uc.Metrics.RecordWebhookEvent(event.Event, "ignored")
		return nil
	}

	amount, err := strconv.ParseFloat(event.Object.Amount.Value, 64)
	if err != nil {
		uc.Metrics.RecordWebhookEvent(event.Event, "ignored")
		slog.Warn("webhook amount not parsable",
			"transaction_id", event.Object.ID, "value", event.Object.Amount.Value)
		return nil
	}

	if err := uc.Gateway.CapturePayment(ctx, event.Object.ID, amount, event.Object.Amount.Currency); err != nil {
		uc.Metrics.RecordWebhookEvent(event.Event, "error")
		return err
	}

	uc.Metrics.RecordWebhookEvent(event.Event, "captured")
	return nil
}

func (uc *DefaultPaymentUsecase) handleSucceeded(event *domain.WebhookEvent) error {
	transactionID := event.Object.ID

	payments, err := uc.PaymentRepo.GetPaymentsByTransactionID(transactionID)
	if err != nil {
		uc.Metrics.RecordWebhookEvent(event.Event, "error")
		return err
	}
	if len(payments) == 0 {
		uc.Metrics.RecordWebhookEvent(event.Event, "unmatched")
		slog.Warn("webhook for unknown transaction", "transaction_id", transactionID)
		return nil
	}

	for _, p := range payments {
		switch p.Status {
		case domain.StatusPaid, domain.StatusReceived:
			// duplicate delivery, stock already decremented once
			continue
		case domain.StatusFailed:
			// failed line waiting on a retry with a new handle
			continue
		}

		if err := uc.PaymentRepo.MarkPaid(p.ID, p.ProductID, p.Quantity); err != nil {
			if errors.Is(err, domain.ErrPaymentNotPending) {
				continue
			}
			if errors.Is(err, domain.ErrInsufficientStock) {
				uc.Metrics.RecordStockConflict(p.ProductID)
				uc.Metrics.RecordWebhookEvent(event.Event, "stock_conflict")
				return fmt.Errorf("payment %s: %w", p.ID, err)
			}
			uc.Metrics.RecordWebhookEvent(event.Event, "error")
			return err
		}

		p.Status = domain.StatusPaid
		uc.Metrics.RecordPaid(p.StoreID, p.Currency, p.Amount)
		uc.publishEvent(p)
	}

	uc.Metrics.RecordWebhookEvent(event.Event, "processed")
	slog.Info("payment succeeded", "transaction_id", transactionID, "lines", len(payments))
	return nil
}

func (uc *DefaultPaymentUsecase) handleCanceled(event *domain.WebhookEvent) error {
	transactionID := event.Object.ID

	payments, err := uc.PaymentRepo.GetPaymentsByTransactionID(transactionID)
	if err != nil {
		uc.Metrics.RecordWebhookEvent(event.Event, "error")
		return err
	}

	for _, p := range payments {
		// a cancel of a superseded handle must not fail the retried line
		if p.TransactionID != transactionID {
			continue
		}
		if p.Status != domain.StatusPending {
			continue
		}

		if err := uc.PaymentRepo.MarkFailed(p.ID); err != nil {
			uc.Metrics.RecordWebhookEvent(event.Event, "error")
			return err
		}

		p.Status = domain.StatusFailed
		uc.Metrics.RecordFailed(p.StoreID)
		uc.publishEvent(p)
	}

	uc.Metrics.RecordWebhookEvent(event.Event, "processed")
	slog.Info("payment canceled", "transaction_id", transactionID)
	return nil
}

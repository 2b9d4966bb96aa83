package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics holds the service's Prometheus collectors. The registerer
// is injected so tests can use a throwaway registry.
type PaymentMetrics struct {
	// Created payment lines
	PaymentsCreatedTotal       prometheus.CounterVec
	PaymentsCreatedAmountTotal prometheus.CounterVec

	// Lines confirmed by the gateway (paid)
	PaymentsPaidTotal       prometheus.CounterVec
	PaymentsPaidAmountTotal prometheus.CounterVec

	// Lines canceled by the gateway (failed)
	PaymentsFailedTotal prometheus.CounterVec

	// Retry attempts that issued a fresh gateway handle
	PaymentsRetriedTotal prometheus.CounterVec

	// Lines confirmed received by the buyer
	PaymentsReceivedTotal prometheus.CounterVec

	// Paid confirmations rejected because stock ran out
	StockConflictsTotal prometheus.CounterVec

	// Webhook notifications by event type and outcome
	WebhookEventsTotal prometheus.CounterVec

	// Placement wall time, pricing through the gateway call
	PlacementDuration prometheus.Histogram
}

func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	factory := promauto.With(reg)

	return &PaymentMetrics{
		PaymentsCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_total",
				Help: "Total payment lines created via order placement",
			},
			[]string{"store_id", "currency"},
		),

		PaymentsCreatedAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_amount_total",
				Help: "Total amount of created payment lines",
			},
			[]string{"store_id", "currency"},
		),

		PaymentsPaidTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_paid_total",
				Help: "Total payment lines confirmed paid",
			},
			[]string{"store_id", "currency"},
		),

		PaymentsPaidAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_paid_amount_total",
				Help: "Total amount of paid payment lines",
			},
			[]string{"store_id", "currency"},
		),

		PaymentsFailedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_failed_total",
				Help: "Total payment lines failed by gateway cancellation",
			},
			[]string{"store_id"},
		),

		PaymentsRetriedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_retried_total",
				Help: "Total retry attempts that issued a new gateway handle",
			},
			[]string{"store_id"},
		),

		PaymentsReceivedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_received_total",
				Help: "Total payment lines confirmed received by the buyer",
			},
			[]string{"store_id"},
		),

		StockConflictsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_stock_conflicts_total",
				Help: "Paid confirmations rejected due to insufficient stock",
			},
			[]string{"product_id"},
		),

		WebhookEventsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhook_events_total",
				Help: "Gateway webhook notifications by event and outcome",
			},
			[]string{"event", "outcome"},
		),

		PlacementDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "payment_placement_duration_seconds",
				Help:    "Order placement duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
		),
	}
}

// RecordCreated records one created payment line.
func (m *PaymentMetrics) RecordCreated(storeID, currency string, amount float64) {
	m.PaymentsCreatedTotal.WithLabelValues(storeID, currency).Inc()
	m.PaymentsCreatedAmountTotal.WithLabelValues(storeID, currency).Add(amount)
}

// RecordPaid records a line flipped to paid with its stock decremented.
func (m *PaymentMetrics) RecordPaid(storeID, currency string, amount float64) {
	m.PaymentsPaidTotal.WithLabelValues(storeID, currency).Inc()
	m.PaymentsPaidAmountTotal.WithLabelValues(storeID, currency).Add(amount)
}

func (m *PaymentMetrics) RecordFailed(storeID string) {
	m.PaymentsFailedTotal.WithLabelValues(storeID).Inc()
}

func (m *PaymentMetrics) RecordRetried(storeID string) {
	m.PaymentsRetriedTotal.WithLabelValues(storeID).Inc()
}

func (m *PaymentMetrics) RecordReceived(storeID string) {
	m.PaymentsReceivedTotal.WithLabelValues(storeID).Inc()
}

func (m *PaymentMetrics) RecordStockConflict(productID string) {
	m.StockConflictsTotal.WithLabelValues(productID).Inc()
}

func (m *PaymentMetrics) RecordWebhookEvent(event, outcome string) {
	m.WebhookEventsTotal.WithLabelValues(event, outcome).Inc()
}

func (m *PaymentMetrics) RecordPlacementDuration(seconds float64) {
	m.PlacementDuration.Observe(seconds)
}

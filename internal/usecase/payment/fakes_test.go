package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/streetmarket/payment-service/internal/config"
	"github.com/streetmarket/payment-service/internal/domain"
	publisher "github.com/streetmarket/payment-service/internal/infrastructure/kafka"
	"github.com/streetmarket/payment-service/internal/infrastructure/metrics"
	"github.com/streetmarket/payment-service/internal/usecase/pricing"
)

// fakePaymentRepo keeps payments, the handle log and product stock in
// memory, mirroring the conditional-update semantics of the real repo.
type fakePaymentRepo struct {
	payments map[string]*domain.Payment
	handles  map[string][]string // transactionID -> payment IDs
	stock    map[string]int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[string]*domain.Payment),
		handles:  make(map[string][]string),
		stock:    make(map[string]int),
	}
}

func (r *fakePaymentRepo) CreatePayments(payments []*domain.Payment) error {
	for _, p := range payments {
		cp := *p
		r.payments[p.ID] = &cp
		r.handles[p.TransactionID] = append(r.handles[p.TransactionID], p.ID)
	}
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetPaymentsByTransactionID(transactionID string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, id := range r.handles[transactionID] {
		cp := *r.payments[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePaymentRepo) MarkPaid(paymentID, productID string, quantity int) error {
	p, ok := r.payments[paymentID]
	if !ok || p.Status != domain.StatusPending {
		return domain.ErrPaymentNotPending
	}
	if r.stock[productID] < quantity {
		return fmt.Errorf("product %s: %w", productID, domain.ErrInsufficientStock)
	}
	p.Status = domain.StatusPaid
	r.stock[productID] -= quantity
	return nil
}

func (r *fakePaymentRepo) MarkFailed(paymentID string) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if p.Status == domain.StatusPending {
		p.Status = domain.StatusFailed
	}
	return nil
}

func (r *fakePaymentRepo) MarkReceived(paymentID string) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if p.Status != domain.StatusPaid {
		return domain.ErrPaymentNotPaid
	}
	p.Status = domain.StatusReceived
	return nil
}

func (r *fakePaymentRepo) ResetForRetry(paymentID, transactionID string, deliveryDate time.Time) error {
	p, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	if p.Status != domain.StatusPending && p.Status != domain.StatusFailed {
		return domain.ErrPaymentNotRetryable
	}
	p.TransactionID = transactionID
	p.Status = domain.StatusPending
	p.DeliveryDate = &deliveryDate
	r.handles[transactionID] = append(r.handles[transactionID], p.ID)
	return nil
}

func (r *fakePaymentRepo) GetPaymentsByBuyerID(buyerID string, statuses []domain.PaymentStatus, page, limit int) ([]*domain.Payment, int64, error) {
	wanted := make(map[domain.PaymentStatus]bool)
	for _, s := range statuses {
		wanted[s] = true
	}

	var matched []*domain.Payment
	for _, p := range r.payments {
		if p.BuyerID == buyerID && wanted[p.Status] {
			cp := *p
			matched = append(matched, &cp)
		}
	}

	total := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakePaymentRepo) ClearExpiredDeliveryDates(now time.Time) (int64, error) {
	var cleared int64
	for _, p := range r.payments {
		if p.DeliveryDate != nil && p.DeliveryDate.Before(now) {
			p.DeliveryDate = nil
			cleared++
		}
	}
	return cleared, nil
}

type fakeGateway struct {
	nextID   int
	captured []string
	failNext bool
}

func (g *fakeGateway) CreatePayment(_ context.Context, amount float64, currency, _ string) (*domain.GatewayPayment, error) {
	if g.failNext {
		return nil, domain.ErrGatewayUnavailable
	}
	g.nextID++
	return &domain.GatewayPayment{
		ID:              fmt.Sprintf("tx-%d", g.nextID),
		Status:          "pending",
		ConfirmationURL: "https://gateway.example/confirm",
		Amount:          amount,
		Currency:        currency,
	}, nil
}

func (g *fakeGateway) CapturePayment(_ context.Context, transactionID string, _ float64, _ string) error {
	if g.failNext {
		return domain.ErrGatewayUnavailable
	}
	g.captured = append(g.captured, transactionID)
	return nil
}

type fakeBuyers struct {
	buyers map[string]*domain.Buyer
}

func (b *fakeBuyers) GetBuyer(_ context.Context, buyerID string) (*domain.Buyer, error) {
	buyer, ok := b.buyers[buyerID]
	if !ok {
		return nil, domain.ErrBuyerNotFound
	}
	return buyer, nil
}

// fakePublisher is safe for the publish goroutines the usecase spawns.
type fakePublisher struct {
	mu     sync.Mutex
	events []publisher.PaymentEvent
	err    error
}

func (p *fakePublisher) PublishPayment(event publisher.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []publisher.PaymentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publisher.PaymentEvent, len(p.events))
	copy(out, p.events)
	return out
}

type fakePricing struct {
	lines []pricing.PricedLine
	total float64
	err   error
}

func (p *fakePricing) PriceCart(items []pricing.CartItem) ([]pricing.PricedLine, float64, error) {
	if p.err != nil {
		return nil, 0, p.err
	}
	return p.lines, p.total, nil
}

type fixture struct {
	uc      *DefaultPaymentUsecase
	repo    *fakePaymentRepo
	gateway *fakeGateway
}

func newFixture(priced *fakePricing) *fixture {
	repo := newFakePaymentRepo()
	gateway := &fakeGateway{}
	buyers := &fakeBuyers{buyers: map[string]*domain.Buyer{
		"buyer-1": {ID: "buyer-1", Address: "12 Main St"},
	}}

	uc := NewDefaultPaymentUsecase(
		repo,
		priced,
		buyers,
		gateway,
		nil,
		metrics.NewPaymentMetrics(prometheus.NewRegistry()),
		config.DeliveryWindow{MinDays: 5, MaxDays: 5},
		"RUB",
	)

	return &fixture{uc: uc, repo: repo, gateway: gateway}
}

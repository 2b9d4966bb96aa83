package background

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/streetmarket/payment-service/internal/config"
	"github.com/streetmarket/payment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentStore implements the payment repository surface the sweeps
// touch; the lifecycle methods are never reached from this package.
type fakePaymentStore struct {
	mu       sync.Mutex
	payments []*domain.Payment
}

func (s *fakePaymentStore) ClearExpiredDeliveryDates(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cleared int64
	for _, p := range s.payments {
		if p.DeliveryDate != nil && p.DeliveryDate.Before(now) {
			p.DeliveryDate = nil
			cleared++
		}
	}
	return cleared, nil
}

func (s *fakePaymentStore) snapshot() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Payment, len(s.payments))
	for i, p := range s.payments {
		out[i] = *p
	}
	return out
}

func (s *fakePaymentStore) CreatePayments([]*domain.Payment) error { return nil }
func (s *fakePaymentStore) GetPaymentByID(string) (*domain.Payment, error) {
	return nil, domain.ErrPaymentNotFound
}
func (s *fakePaymentStore) GetPaymentsByTransactionID(string) ([]*domain.Payment, error) {
	return nil, nil
}
func (s *fakePaymentStore) MarkPaid(string, string, int) error { return nil }
func (s *fakePaymentStore) MarkFailed(string) error            { return nil }
func (s *fakePaymentStore) MarkReceived(string) error          { return nil }
func (s *fakePaymentStore) ResetForRetry(string, string, time.Time) error {
	return nil
}
func (s *fakePaymentStore) GetPaymentsByBuyerID(string, []domain.PaymentStatus, int, int) ([]*domain.Payment, int64, error) {
	return nil, 0, nil
}

type fakeDiscountStore struct {
	mu        sync.Mutex
	discounts []domain.Discount
}

func (s *fakeDiscountStore) DeleteExpired(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.discounts[:0]
	var removed int64
	for _, d := range s.discounts {
		if d.EndDate.Before(now) {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.discounts = kept
	return removed, nil
}

func (s *fakeDiscountStore) remaining() []domain.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Discount, len(s.discounts))
	copy(out, s.discounts)
	return out
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDeliverySweep_ClearsExpiredDatesWithoutTouchingStatus(t *testing.T) {
	overdue := datePtr(time.Now().Add(-48 * time.Hour))
	upcoming := datePtr(time.Now().Add(72 * time.Hour))

	paymentStore := &fakePaymentStore{payments: []*domain.Payment{
		{ID: "pay-1", Status: domain.StatusPaid, Amount: 180.00, DeliveryDate: overdue},
		{ID: "pay-2", Status: domain.StatusPending, Amount: 49.90, DeliveryDate: upcoming},
	}}
	discountStore := &fakeDiscountStore{}

	tasks := NewMaintenanceTasks(paymentStore, discountStore, config.Maintenance{
		DeliverySweep: 5 * time.Millisecond,
		DiscountSweep: time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tasks.StartAll(ctx)

	require.Eventually(t, func() bool {
		return paymentStore.snapshot()[0].DeliveryDate == nil
	}, time.Second, 5*time.Millisecond)

	payments := paymentStore.snapshot()
	// the sweep only clears the date, the lifecycle state is not its business
	assert.Equal(t, domain.StatusPaid, payments[0].Status)
	assert.Equal(t, domain.StatusPending, payments[1].Status)
	require.NotNil(t, payments[1].DeliveryDate)
	assert.Equal(t, *upcoming, *payments[1].DeliveryDate)
}

func TestDeliverySweep_RerunIsIdempotent(t *testing.T) {
	paymentStore := &fakePaymentStore{payments: []*domain.Payment{
		{ID: "pay-1", Status: domain.StatusPaid, DeliveryDate: datePtr(time.Now().Add(-time.Hour))},
	}}

	cleared, err := paymentStore.ClearExpiredDeliveryDates(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	cleared, err = paymentStore.ClearExpiredDeliveryDates(time.Now())
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestDiscountSweep_RemovesExpiredWithoutChangingLineAmounts(t *testing.T) {
	// amount snapshotted at placement from a since-expired 10% discount
	paymentStore := &fakePaymentStore{payments: []*domain.Payment{
		{ID: "pay-1", Status: domain.StatusPaid, Amount: 180.00},
	}}
	discountStore := &fakeDiscountStore{discounts: []domain.Discount{
		{ID: "d-expired", ProductID: "p1", EndDate: time.Now().Add(-time.Hour)},
		{ID: "d-active", ProductID: "p2", EndDate: time.Now().Add(time.Hour)},
	}}

	tasks := NewMaintenanceTasks(paymentStore, discountStore, config.Maintenance{
		DeliverySweep: time.Hour,
		DiscountSweep: 5 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tasks.StartAll(ctx)

	require.Eventually(t, func() bool {
		return len(discountStore.remaining()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "d-active", discountStore.remaining()[0].ID)
	assert.Equal(t, 180.00, paymentStore.snapshot()[0].Amount)
}

func TestSweeps_StopOnContextCancel(t *testing.T) {
	paymentStore := &fakePaymentStore{payments: []*domain.Payment{
		{ID: "pay-1", DeliveryDate: datePtr(time.Now().Add(-time.Hour))},
	}}
	discountStore := &fakeDiscountStore{}

	tasks := NewMaintenanceTasks(paymentStore, discountStore, config.Maintenance{
		DeliverySweep: 5 * time.Millisecond,
		DiscountSweep: 5 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	tasks.StartAll(ctx)

	require.Eventually(t, func() bool {
		return paymentStore.snapshot()[0].DeliveryDate == nil
	}, time.Second, 5*time.Millisecond)
	cancel()

	// a date turning overdue after cancel stays put
	time.Sleep(20 * time.Millisecond)
	paymentStore.mu.Lock()
	paymentStore.payments[0].DeliveryDate = datePtr(time.Now().Add(-time.Minute))
	paymentStore.mu.Unlock()

	time.Sleep(30 * time.Millisecond)
	assert.NotNil(t, paymentStore.snapshot()[0].DeliveryDate)
}
package background

import (
	"context"
	"log"
	"time"

	"github.com/streetmarket/payment-service/internal/config"
	"github.com/streetmarket/payment-service/internal/domain"
)

type MaintenanceTasks struct {
	PaymentRepo  domain.PaymentRepository
	DiscountRepo domain.DiscountRepository
	Intervals    config.Maintenance
}

func NewMaintenanceTasks(paymentRepo domain.PaymentRepository, discountRepo domain.DiscountRepository, intervals config.Maintenance) *MaintenanceTasks {
	return &MaintenanceTasks{
		PaymentRepo:  paymentRepo,
		DiscountRepo: discountRepo,
		Intervals:    intervals,
	}
}

func (mt *MaintenanceTasks) StartAll(ctx context.Context) {
	go mt.startDeliverySweep(ctx)
	go mt.startDiscountSweep(ctx)
}

// startDeliverySweep clears delivery dates that slipped past their window so
// overdue lines show up without a due date instead of a stale one.
func (mt *MaintenanceTasks) startDeliverySweep(ctx context.Context) {
	ticker := time.NewTicker(mt.Intervals.DeliverySweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleared, err := mt.PaymentRepo.ClearExpiredDeliveryDates(time.Now())
			if err != nil {
				log.Printf("Delivery sweep error: %v\n", err)
				continue
			}
			if cleared > 0 {
				log.Printf("Delivery sweep cleared %d expired dates", cleared)
			}
		}
	}
}

func (mt *MaintenanceTasks) startDiscountSweep(ctx context.Context) {
	ticker := time.NewTicker(mt.Intervals.DiscountSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := mt.DiscountRepo.DeleteExpired(time.Now())
			if err != nil {
				log.Printf("Discount sweep error: %v\n", err)
				continue
			}
			if removed > 0 {
				log.Printf("Discount sweep removed %d expired discounts", removed)
			}
		}
	}
}

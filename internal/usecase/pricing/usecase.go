package pricing

import (
	"fmt"
	"math"

	"github.com/streetmarket/payment-service/internal/domain"
)

// CartItem is a single requested position before pricing.
type CartItem struct {
	ProductID string
	Quantity  int
}

// PricedLine is a cart item with the effective price fixed at placement time.
type PricedLine struct {
	ProductID   string
	StoreID     string
	ProductName string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

type PricingUsecase interface {
	PriceCart(items []CartItem) ([]PricedLine, float64, error)
}

type DefaultPricingUsecase struct {
	ProductRepo domain.ProductRepository
}

func NewDefaultPricingUsecase(productRepo domain.ProductRepository) *DefaultPricingUsecase {
	return &DefaultPricingUsecase{ProductRepo: productRepo}
}

// PriceCart resolves each item against the current catalog and returns the
// priced lines plus the cart total. Prices are snapshotted here: later
// discount changes never touch an already-placed order.
func (uc *DefaultPricingUsecase) PriceCart(items []CartItem) ([]PricedLine, float64, error) {
	if len(items) == 0 {
		return nil, 0, domain.ErrInvalidCart
	}

	lines := make([]PricedLine, 0, len(items))
	total := 0.0

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, 0, fmt.Errorf("product %s: %w", item.ProductID, domain.ErrInvalidQuantity)
		}

		snapshot, err := uc.ProductRepo.GetProductSnapshot(item.ProductID)
		if err != nil {
			return nil, 0, err
		}

		unitPrice := EffectiveUnitPrice(snapshot)
		amount := round2(unitPrice * float64(item.Quantity))

		lines = append(lines, PricedLine{
			ProductID:   snapshot.ID,
			StoreID:     snapshot.StoreID,
			ProductName: snapshot.Name,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
		})
		total += amount
	}

	return lines, round2(total), nil
}

// EffectiveUnitPrice applies the active discount if any. A fixed discount
// price wins over a percentage when both are set.
func EffectiveUnitPrice(snapshot *domain.ProductSnapshot) float64 {
	price := snapshot.Price
	if snapshot.Discount != nil {
		if snapshot.Discount.DiscountPrice > 0 {
			price = snapshot.Discount.DiscountPrice
		} else if snapshot.Discount.DiscountPercentage > 0 {
			price = price - price*snapshot.Discount.DiscountPercentage/100
		}
	}

	return round2(price)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

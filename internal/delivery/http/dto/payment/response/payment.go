package response

import (
	"time"

	"github.com/streetmarket/payment-service/internal/domain"
)

type PaymentView struct {
	ID           string     `json:"id"`
	OrderRef     string     `json:"orderRef"`
	ProductID    string     `json:"productId"`
	StoreID      string     `json:"storeId"`
	ProductName  string     `json:"productName"`
	Quantity     int        `json:"quantity"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	Address      string     `json:"address"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type PlacementResponse struct {
	OrderRef        string        `json:"orderRef"`
	TransactionID   string        `json:"transactionId"`
	GatewayStatus   string        `json:"gatewayStatus"`
	ConfirmationURL string        `json:"confirmationUrl"`
	Total           float64       `json:"total"`
	Currency        string        `json:"currency"`
	Payments        []PaymentView `json:"payments"`
}

type RetryResponse struct {
	PaymentID       string `json:"paymentId"`
	TransactionID   string `json:"transactionId"`
	GatewayStatus   string `json:"gatewayStatus"`
	ConfirmationURL string `json:"confirmationUrl"`
}

type PaymentPageResponse struct {
	Payments     []PaymentView `json:"payments"`
	Total        int64         `json:"total"`
	CurrentPage  int           `json:"currentPage"`
	MaxPageCount int           `json:"maxPageCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPaymentView(p *domain.Payment) PaymentView {
	return PaymentView{
		ID:           p.ID,
		OrderRef:     p.OrderRef,
		ProductID:    p.ProductID,
		StoreID:      p.StoreID,
		ProductName:  p.ProductName,
		Quantity:     p.Quantity,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Address:      p.Address,
		DeliveryDate: p.DeliveryDate,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
	}
}

func ToPaymentViews(payments []*domain.Payment) []PaymentView {
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, ToPaymentView(p))
	}

	return views
}

package yookassa

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/streetmarket/payment-service/internal/config"
	"github.com/streetmarket/payment-service/internal/domain"
)

// Client talks to the YooKassa payments API. Every create call carries a
// fresh Idempotence-Key, so a timed-out request that actually landed is safe
// to observe via the webhook rather than by blind resubmission.
type Client struct {
	http      *resty.Client
	returnURL string
}

func NewClient(cfg config.Yookassa) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.APIURL).
		SetBasicAuth(cfg.ShopID, cfg.SecretKey).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:      httpClient,
		returnURL: cfg.ReturnURL,
	}
}

type amountPayload struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type paymentMethodData struct {
	Type string `json:"type"`
}

type confirmationPayload struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type createPaymentRequest struct {
	Amount            amountPayload        `json:"amount"`
	PaymentMethodData paymentMethodData    `json:"payment_method_data"`
	Confirmation      *confirmationPayload `json:"confirmation,omitempty"`
	Description       string               `json:"description"`
}

type capturePaymentRequest struct {
	Amount amountPayload `json:"amount"`
}

type paymentResponse struct {
	ID           string               `json:"id"`
	Status       string               `json:"status"`
	Amount       amountPayload        `json:"amount"`
	Confirmation *confirmationPayload `json:"confirmation,omitempty"`
}

func (c *Client) CreatePayment(ctx context.Context, amount float64, currency, description string) (*domain.GatewayPayment, error) {
	var out paymentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotence-Key", uuid.New().String()).
		SetBody(createPaymentRequest{
			Amount:            amountPayload{Value: FormatAmount(amount), Currency: currency},
			PaymentMethodData: paymentMethodData{Type: "bank_card"},
			Confirmation:      &confirmationPayload{Type: "redirect", ReturnURL: c.returnURL},
			Description:       description,
		}).
		SetResult(&out).
		Post("/payments")
	if err != nil {
		return nil, fmt.Errorf("%w: create payment: %v", domain.ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: create payment: %s", domain.ErrGatewayUnavailable, resp.Status())
	}

	gatewayPayment := &domain.GatewayPayment{
		ID:       out.ID,
		Status:   out.Status,
		Amount:   amount,
		Currency: currency,
	}
	if out.Confirmation != nil {
		gatewayPayment.ConfirmationURL = out.Confirmation.ConfirmationURL
	}

	return gatewayPayment, nil
}

func (c *Client) CapturePayment(ctx context.Context, transactionID string, amount float64, currency string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotence-Key", uuid.New().String()).
		SetBody(capturePaymentRequest{
			Amount: amountPayload{Value: FormatAmount(amount), Currency: currency},
		}).
		Post(fmt.Sprintf("/payments/%s/capture", transactionID))
	if err != nil {
		return fmt.Errorf("%w: capture payment %s: %v", domain.ErrGatewayUnavailable, transactionID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: capture payment %s: %s", domain.ErrGatewayUnavailable, transactionID, resp.Status())
	}

	return nil
}

// FormatAmount renders a monetary value the way the gateway expects:
// decimal string, two fraction digits.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

package storefront

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/streetmarket/payment-service/internal/domain"
)

// HTTPBuyerClient reads buyer profiles from the storefront's user service.
type HTTPBuyerClient struct {
	http *resty.Client
}

func NewHTTPBuyerClient(baseURL string, timeout time.Duration) *HTTPBuyerClient {
	return &HTTPBuyerClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

type buyerResponse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

func (c *HTTPBuyerClient) GetBuyer(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	var out buyerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/internal/users/%s", buyerID))
	if err != nil {
		return nil, fmt.Errorf("get buyer %s: %w", buyerID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrBuyerNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get buyer %s: %s", buyerID, resp.Status())
	}

	return &domain.Buyer{ID: out.ID, Address: out.Address}, nil
}

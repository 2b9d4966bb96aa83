package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streetmarket/payment-service/internal/delivery/http/dto/payment/request"
	"github.com/streetmarket/payment-service/internal/delivery/http/dto/payment/response"
	"github.com/streetmarket/payment-service/internal/delivery/http/middleware"
	"github.com/streetmarket/payment-service/internal/domain"
	paymentdto "github.com/streetmarket/payment-service/internal/usecase/dto/payment"
	"github.com/streetmarket/payment-service/internal/usecase/payment"
	"github.com/streetmarket/payment-service/internal/usecase/pricing"
)

type PaymentHandler struct {
	usecase payment.PaymentUsecase
}

func NewPaymentHandler(usecase payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{usecase: usecase}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCart),
		errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBuyerNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPaymentNotRetryable),
		errors.Is(err, domain.ErrPaymentNotPaid),
		errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *PaymentHandler) respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		slog.Error("payment handler error", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

func (h *PaymentHandler) Place(c *gin.Context) {
	var req request.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]pricing.CartItem, 0, len(req.Products))
	for _, line := range req.Products {
		items = append(items, pricing.CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	out, err := h.usecase.PlaceOrder(c.Request.Context(), &paymentdto.PlaceOrderInput{
		BuyerID: c.GetString(middleware.BuyerIDKey),
		Items:   items,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.PlacementResponse{
		OrderRef:        out.OrderRef,
		TransactionID:   out.TransactionID,
		GatewayStatus:   out.GatewayStatus,
		ConfirmationURL: out.ConfirmationURL,
		Total:           out.Total,
		Currency:        out.Currency,
		Payments:        response.ToPaymentViews(out.Payments),
	})
}

func (h *PaymentHandler) Retry(c *gin.Context) {
	var req request.RetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.usecase.RetryPayment(c.Request.Context(), &paymentdto.RetryPaymentInput{
		BuyerID:   c.GetString(middleware.BuyerIDKey),
		PaymentID: req.PaymentID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.RetryResponse{
		PaymentID:       out.PaymentID,
		TransactionID:   out.TransactionID,
		GatewayStatus:   out.GatewayStatus,
		ConfirmationURL: out.ConfirmationURL,
	})
}

func (h *PaymentHandler) ConfirmReceipt(c *gin.Context) {
	var req request.ConfirmReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.usecase.ConfirmReceipt(&paymentdto.ConfirmReceiptInput{
		BuyerID:   c.GetString(middleware.BuyerIDKey),
		PaymentID: req.PaymentID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "success"})
}

// Webhook receives gateway notifications. Anything safely ignorable is
// acknowledged with 200 so the gateway stops resending; capture failures
// and stock conflicts return non-2xx to force redelivery.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var event domain.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.usecase.HandleGatewayEvent(c.Request.Context(), &event); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}

func (h *PaymentHandler) History(c *gin.Context) {
	h.page(c, h.usecase.GetHistory)
}

func (h *PaymentHandler) Received(c *gin.Context) {
	h.page(c, h.usecase.GetReceived)
}

func (h *PaymentHandler) page(c *gin.Context, query func(*paymentdto.HistoryInput) (*paymentdto.PaymentPageOutput, error)) {
	var params struct {
		Page  int `form:"page,default=1"`
		Limit int `form:"limit,default=10"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := query(&paymentdto.HistoryInput{
		BuyerID: c.GetString(middleware.BuyerIDKey),
		Page:    params.Page,
		Limit:   params.Limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.PaymentPageResponse{
		Payments:     response.ToPaymentViews(out.Payments),
		Total:        out.Total,
		CurrentPage:  out.CurrentPage,
		MaxPageCount: out.MaxPageCount,
	})
}

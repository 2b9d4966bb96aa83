package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streetmarket/payment-service/internal/delivery/http/handlers"
	"github.com/streetmarket/payment-service/internal/delivery/http/middleware"
)

// NewRouter wires the public payment routes. The webhook route stays outside
// the session group: the gateway does not carry buyer identity.
func NewRouter(paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "payment-service"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/payment/webhook/yookassa", paymentHandler.Webhook)

	authorized := router.Group("/payment", middleware.BuyerSession())
	{
		authorized.POST("/place", paymentHandler.Place)
		authorized.POST("/retry", paymentHandler.Retry)
		authorized.POST("/confirm-receipt", paymentHandler.ConfirmReceipt)
		authorized.GET("/history", paymentHandler.History)
		authorized.GET("/received", paymentHandler.Received)
	}

	return router
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const BuyerIDKey = "buyerID"

// BuyerSession trusts the X-User-ID header set by the API gateway after
// token verification. Requests without it never reach the usecases.
func BuyerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetHeader("X-User-ID")
		if buyerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}

		c.Set(BuyerIDKey, buyerID)
		c.Next()
	}
}

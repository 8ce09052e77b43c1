package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vitalwatch/backend/pkg/logger"
	"github.com/vitalwatch/backend/pkg/metrics"
)

// Principal is the authenticated identity derived from a verified bearer
// token. It lives for one request; nothing about it is persisted.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// Verifier is the minimal interface the middleware depends on. Production
// wiring uses the identity provider's SDK; tests substitute fakes.
type Verifier interface {
	Verify(ctx context.Context, raw string) (*Principal, error)
}

const principalKey = "principal"

// AuthMiddleware returns a Gin middleware that verifies Bearer tokens using
// the provided verifier. A missing or malformed Authorization header fails
// with "No token provided"; a rejected token with "Unauthorized". The
// underlying verification error is logged server-side only.
func AuthMiddleware(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			metrics.AuthRejected.WithLabelValues("missing_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		p, err := ver.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warnf("authentication error: %v", err)
			metrics.AuthRejected.WithLabelValues("invalid_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFrom returns the verified principal stored by AuthMiddleware.
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

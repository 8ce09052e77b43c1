package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/vitalwatch/backend/pkg/metrics"
)

// withPrincipal keys the limiter by a fixed uid so tests don't share the
// client-IP bucket with each other.
func withPrincipal(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(principalKey, &Principal{UID: uid})
		c.Next()
	}
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	r := gin.New()
	r.Use(withPrincipal("rl-under-limit"))
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req2 := httptest.NewRequest("GET", "/ok", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	after := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))
	require.Equal(t, 2.0, after-before)
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	r.Use(withPrincipal("rl-exceeded"))
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	rq1 := httptest.NewRequest("GET", "/limited", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	rq2 := httptest.NewRequest("GET", "/limited", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait long enough to replenish one token and it should be allowed
	time.Sleep(2100 * time.Millisecond)
	rq3 := httptest.NewRequest("GET", "/limited", nil)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, rq3)
	require.Equal(t, http.StatusOK, w3.Code)
}

// prefixVerifier accepts tokens of the form "token-<uid>".
type prefixVerifier struct{}

func (prefixVerifier) Verify(ctx context.Context, raw string) (*Principal, error) {
	uid, ok := strings.CutPrefix(raw, "token-")
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &Principal{UID: uid}, nil
}

// The limiter mounts after the auth gate, so it must see the principal the
// gate stored and key buckets by uid even when every request shares one
// client IP.
func TestRateLimitMiddleware_BehindAuthGateKeysByUID(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware(prefixVerifier{}), RateLimitMiddleware(0.5, 1))
	r.GET("/v", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	do := func(uid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/v", nil)
		req.Header.Set("Authorization", "Bearer token-"+uid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, do("rlgate-a").Code)
	// same uid immediately again drains its bucket
	require.Equal(t, http.StatusTooManyRequests, do("rlgate-a").Code)
	// a different uid from the same client IP still has its own bucket
	require.Equal(t, http.StatusOK, do("rlgate-b").Code)
}

func TestRateLimitMiddleware_SeparateBucketsPerUser(t *testing.T) {
	newRouter := func(uid string) *gin.Engine {
		r := gin.New()
		r.Use(withPrincipal(uid))
		r.Use(RateLimitMiddleware(0.5, 1))
		r.GET("/u", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
		return r
	}
	ra := newRouter("rl-user-a")
	rb := newRouter("rl-user-b")

	w1 := httptest.NewRecorder()
	ra.ServeHTTP(w1, httptest.NewRequest("GET", "/u", nil))
	require.Equal(t, http.StatusOK, w1.Code)

	// same uid immediately again => rejected
	w2 := httptest.NewRecorder()
	ra.ServeHTTP(w2, httptest.NewRequest("GET", "/u", nil))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// a different uid still has its own bucket
	w3 := httptest.NewRecorder()
	rb.ServeHTTP(w3, httptest.NewRequest("GET", "/u", nil))
	require.Equal(t, http.StatusOK, w3.Code)
}

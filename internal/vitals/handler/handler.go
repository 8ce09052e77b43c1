package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitalwatch/backend/internal/vitals/service"
	"github.com/vitalwatch/backend/pkg/logger"
	"github.com/vitalwatch/backend/pkg/metrics"
	"github.com/vitalwatch/backend/pkg/middleware"
)

// recentLimit caps the cross-user window served by GET /vitals.
const recentLimit = 50

// RegisterHealth mounts the liveness probe. Kept separate from Register so
// callers mount it ahead of the auth gate and monitoring probes work without
// credentials.
func RegisterHealth(r gin.IRoutes) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Register mounts the vitals read routes. The route group is expected to
// carry AuthMiddleware; every handler here assumes a verified principal.
func Register(rg gin.IRoutes, svc service.Service) {
	// GET /vitals - latest readings across all users, newest last
	rg.GET("/vitals", func(c *gin.Context) {
		list, err := svc.Recent(c.Request.Context(), recentLimit)
		if err != nil {
			logger.Errorf("error fetching vitals: %v", err)
			metrics.VitalsFetches.WithLabelValues("recent", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vitals"})
			return
		}
		metrics.VitalsFetches.WithLabelValues("recent", "ok").Inc()
		c.JSON(http.StatusOK, list)
	})

	// GET /vitals/:userId - all readings for one user. The caller may only
	// read their own: principals are not allowed to browse other accounts.
	rg.GET("/vitals/:userId", func(c *gin.Context) {
		uid := c.Param("userId")
		p, ok := middleware.PrincipalFrom(c)
		if !ok || p.UID != uid {
			metrics.VitalsFetches.WithLabelValues("user", "forbidden").Inc()
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		list, err := svc.ForUser(c.Request.Context(), uid)
		if err != nil {
			logger.Errorf("error fetching user vitals: %v", err)
			metrics.VitalsFetches.WithLabelValues("user", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user vitals"})
			return
		}
		metrics.VitalsFetches.WithLabelValues("user", "ok").Inc()
		c.JSON(http.StatusOK, list)
	})
}

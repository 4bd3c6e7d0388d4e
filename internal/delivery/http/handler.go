package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storeinsights/backend/internal/domain"
)

const (
	serviceName    = "storeinsights-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer domain.InsightsAnalyzer
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer domain.InsightsAnalyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// Root returns the service banner
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Store Insights API",
		"version": serviceVersion,
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeStore handles store analysis requests
func (h *Handler) AnalyzeStore(c *gin.Context) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "store analysis not configured",
		})
		return
	}

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request: website_url is required",
		})
		return
	}

	insights, err := h.analyzer.AnalyzeStore(c.Request.Context(), req.WebsiteURL)
	if err != nil {
		log.Printf("[HTTP] request_id=%s analyze %q failed: %v", RequestIDFromContext(c), req.WebsiteURL, err)
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// errorResponse maps domain errors to HTTP status codes
func errorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, domain.ErrStoreUnreachable):
		return http.StatusUnauthorized, gin.H{"error": "Website not found or inaccessible", "detail": err.Error()}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()}
	}
}

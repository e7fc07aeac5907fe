package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/repository"
)

// Handler serves the health and diagnostic routes.
type Handler struct {
	diag repository.Diagnostics
}

func NewHandler(diag repository.Diagnostics) *Handler {
	return &Handler{diag: diag}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"status": "healthy",
		},
	})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	if err := h.diag.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, NewErrorResponse("database unavailable"))
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ready"}))
}

func (h *Handler) MetricsHandler(c *gin.Context) {
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}

// Root answers the plain liveness string the portal frontend expects.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Chiro backend is running 🚀")
}

// TestDB reports the store's current timestamp, keeping the frontend's
// connectivity check working against this backend.
func (h *Handler) TestDB(c *gin.Context) {
	now, err := h.diag.Now(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("test-db query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect to DB"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"time": now})
}

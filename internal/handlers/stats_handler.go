package handlers

import (
	"net/http"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles the admin statistics endpoint
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/admin/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context(), models.DefaultAccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, stats)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/rs/zerolog"
)

// StatsHandler handles visit statistics endpoints
type StatsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(services *service.Services, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		services: services,
		log:      log.With().Str("handler", "stats").Logger(),
	}
}

// RecordVisit handles POST /api/stats/visit
func (h *StatsHandler) RecordVisit(c *gin.Context) {
	if err := h.services.Stats.RecordVisit(c.Request.Context(), c.ClientIP()); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit recorded"})
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.services.Stats.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

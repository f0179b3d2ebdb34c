package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/rs/zerolog"
)

// SkillHandler handles skill endpoints
type SkillHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(services *service.Services, log zerolog.Logger) *SkillHandler {
	return &SkillHandler{
		services: services,
		log:      log.With().Str("handler", "skill").Logger(),
	}
}

// List handles GET /api/skills?category=
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.services.Skill.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// ListGrouped handles GET /api/skills/grouped
func (h *SkillHandler) ListGrouped(c *gin.Context) {
	grouped, err := h.services.Skill.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/rs/zerolog"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		log:      log.With().Str("handler", "project").Logger(),
	}
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.services.Project.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id and counts the view
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.services.Project.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListFeatured handles GET /api/projects/featured/list
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.services.Project.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.services.Project.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

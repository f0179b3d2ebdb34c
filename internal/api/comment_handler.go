package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Update handles PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	var req models.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "comment deleted"})
}

// Count handles GET /api/comments/count
func (h *CommentHandler) Count(c *gin.Context) {
	count, err := h.services.Comment.Count(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgyujin/ksnu-portfolio/internal/service"
	"github.com/kgyujin/ksnu-portfolio/internal/validation"
	"github.com/rs/zerolog"
)

// respondError maps service errors to HTTP statuses. Storage failures are
// logged with detail but surfaced with a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"guess-the-number/internal/game"
	"guess-the-number/internal/services"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game session not found. Please start a new game."})
	case errors.Is(err, game.ErrIllegalAction):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Action not allowed right now",
			"details": err.Error(),
		})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guess-the-number/internal/services"
)

type PlayerHandler struct {
	gameService *services.GameService
	jwtService  *services.JWTService
}

func NewPlayerHandler(gameService *services.GameService, jwtService *services.JWTService) *PlayerHandler {
	return &PlayerHandler{
		gameService: gameService,
		jwtService:  jwtService,
	}
}

// CreateSession registers a new player and returns the token that
// identifies the session on every /api call.
func (h *PlayerHandler) CreateSession(c *gin.Context) {
	session, err := h.gameService.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(session.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"session_id": session.ID,
		"token":      token,
		"expires_at": expiresAt,
		"session":    session.Status(),
	})
}

func (h *PlayerHandler) GetCurrentSession(c *gin.Context) {
	status, err := h.gameService.Status(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": status,
	})
}

func (h *PlayerHandler) Logout(c *gin.Context) {
	if _, err := h.gameService.End(c.Request.Context(), c.GetString("session_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

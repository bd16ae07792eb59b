package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
	"guess-the-number/internal/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type gameAction func(c *gin.Context, sessionID string) (game.Result, *models.PlayerSession, error)

func (h *GameHandler) respond(c *gin.Context, action gameAction) {
	sessionID := c.GetString("session_id")

	result, session, err := action(c, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{
		Success:   result.Outcome != game.OutcomeInvalid,
		SessionID: sessionID,
		Result:    result,
		Session:   session.Status(),
	})
}

func bindDifficulty(c *gin.Context) (*game.Difficulty, bool) {
	var req models.StartRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"details": err.Error(),
			})
			return nil, false
		}
	}

	d, err := req.ParseDifficulty()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return d, true
}

func (h *GameHandler) Start(c *gin.Context) {
	difficulty, ok := bindDifficulty(c)
	if !ok {
		return
	}

	h.respond(c, func(c *gin.Context, id string) (game.Result, *models.PlayerSession, error) {
		return h.gameService.Start(c.Request.Context(), id, difficulty)
	})
}

// NewGame throws away the current round, finished or not, and starts over.
func (h *GameHandler) NewGame(c *gin.Context) {
	difficulty, ok := bindDifficulty(c)
	if !ok {
		return
	}

	h.respond(c, func(c *gin.Context, id string) (game.Result, *models.PlayerSession, error) {
		return h.gameService.NewGame(c.Request.Context(), id, difficulty)
	})
}

func (h *GameHandler) Guess(c *gin.Context) {
	var req models.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Guess is required",
			"details": err.Error(),
		})
		return
	}

	h.respond(c, func(c *gin.Context, id string) (game.Result, *models.PlayerSession, error) {
		return h.gameService.Guess(c.Request.Context(), id, string(req.Guess))
	})
}

func (h *GameHandler) ToggleDifficulty(c *gin.Context) {
	h.respond(c, func(c *gin.Context, id string) (game.Result, *models.PlayerSession, error) {
		return h.gameService.ToggleDifficulty(c.Request.Context(), id)
	})
}

func (h *GameHandler) Continue(c *gin.Context) {
	h.respond(c, func(c *gin.Context, id string) (game.Result, *models.PlayerSession, error) {
		return h.gameService.Continue(c.Request.Context(), id)
	})
}

func (h *GameHandler) GetStatus(c *gin.Context) {
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

func (h *GameHandler) EndGame(c *gin.Context) {
	deleted, err := h.gameService.End(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Game session ended"
	if !deleted {
		message = "Game session not found"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": deleted,
		"message": message,
	})
}

func (h *GameHandler) GetHelp(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"help":    h.gameService.Help(),
	})
}

// ListSessions is a debugging aid and is not routed in production.
func (h *GameHandler) ListSessions(c *gin.Context) {
	statuses, err := h.gameService.ListSessions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"active_sessions": len(statuses),
		"sessions":        statuses,
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Number Guessing Game API is running",
	})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
	"guess-the-number/internal/services"
)

const (
	chatHelp = "I'm a number guessing game! Guess a number between 0 and 99. " +
		"I'll tell you if it's higher or lower. Type 'start' for a new game or just send me a number to guess!"
	chatFallback = "I didn't understand that. Please send me a number to guess, or type 'start' for a new game, " +
		"'help' for instructions, or 'status' for game info."
	chatNoRound = "There is no round in progress. Type 'start' for a new game."
)

// ChatbotHandler drives the game from free-text messages.
type ChatbotHandler struct {
	gameService *services.GameService
}

func NewChatbotHandler(gameService *services.GameService) *ChatbotHandler {
	return &ChatbotHandler{gameService: gameService}
}

func (h *ChatbotHandler) HandleMessage(c *gin.Context) {
	var req models.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	var difficulty *game.Difficulty
	if req.Difficulty != "" {
		d, err := game.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		difficulty = &d
	}

	ctx := c.Request.Context()
	sessionID := c.GetString("session_id")
	message := strings.TrimSpace(req.Message)

	status, err := h.gameService.Status(ctx, sessionID)
	if errors.Is(err, services.ErrSessionNotFound) {
		h.newGame(c, sessionID, difficulty)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := strconv.Atoi(message); err == nil {
		result, _, err := h.gameService.Guess(ctx, sessionID, message)
		if errors.Is(err, game.ErrIllegalAction) {
			h.reply(c, false, sessionID, chatNoRound, nil)
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		h.reply(c, true, sessionID, result.Message, &result)
		return
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "start") || strings.Contains(lower, "new game"):
		h.newGame(c, sessionID, difficulty)
	case strings.Contains(lower, "status") || strings.Contains(lower, "info"):
		h.reply(c, true, sessionID, describeStatus(status), nil)
	case strings.Contains(lower, "help"):
		h.reply(c, true, sessionID, chatHelp, nil)
	default:
		h.reply(c, true, sessionID, chatFallback, nil)
	}
}

func (h *ChatbotHandler) newGame(c *gin.Context, sessionID string, difficulty *game.Difficulty) {
	result, _, err := h.gameService.NewGame(c.Request.Context(), sessionID, difficulty)
	if err != nil {
		respondError(c, err)
		return
	}
	h.reply(c, true, sessionID, result.Message, &result)
}

func (h *ChatbotHandler) reply(c *gin.Context, success bool, sessionID, response string, result *game.Result) {
	c.JSON(http.StatusOK, models.ChatbotResponse{
		Success:   success,
		SessionID: sessionID,
		Response:  response,
		Result:    result,
	})
}

func describeStatus(s models.SessionStatus) string {
	state := "Not Started"
	switch s.Status {
	case game.StatusInProgress:
		state = "Active"
	case game.StatusWon:
		state = "Won"
	case game.StatusLost:
		state = "Lost"
	}
	return fmt.Sprintf("Game Status: %s, Attempts: %d/%d, Difficulty: %s",
		state, s.AttemptsRemaining, s.MaxAttempts, s.Difficulty)
}

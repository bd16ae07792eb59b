package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guess-the-number/internal/middleware"
	"guess-the-number/internal/services"
)

type RouterConfig struct {
	GameService *services.GameService
	JWTService  *services.JWTService
	RateLimiter *middleware.RateLimiter
	WebSocket   *WebSocketHandler
	// Debug exposes the session listing endpoint.
	Debug bool
}

func NewRouter(rc RouterConfig) *gin.Engine {
	playerHandler := NewPlayerHandler(rc.GameService, rc.JWTService)
	gameHandler := NewGameHandler(rc.GameService)
	chatbotHandler := NewChatbotHandler(rc.GameService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", Health)
	router.POST("/auth/session", middleware.RateLimitMiddleware(rc.RateLimiter), playerHandler.CreateSession)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(rc.JWTService))
	protected.Use(middleware.RateLimitMiddleware(rc.RateLimiter))
	{
		protected.GET("/me", playerHandler.GetCurrentSession)
		protected.POST("/logout", playerHandler.Logout)

		if rc.WebSocket != nil {
			protected.GET("/ws", rc.WebSocket.HandleWebSocket)
		}

		protected.POST("/chatbot", chatbotHandler.HandleMessage)

		games := protected.Group("/game")
		{
			games.GET("/help", gameHandler.GetHelp)
			games.GET("/status", gameHandler.GetStatus)
			games.POST("/start", gameHandler.Start)
			games.POST("/guess", gameHandler.Guess)
			games.POST("/difficulty", gameHandler.ToggleDifficulty)
			games.POST("/continue", gameHandler.Continue)
			games.POST("/new", gameHandler.NewGame)
			games.DELETE("", gameHandler.EndGame)

			if rc.Debug {
				games.GET("/sessions", gameHandler.ListSessions)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return router
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
	"guess-the-number/internal/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message types exchanged over the socket.
const (
	MsgStart            = "START"
	MsgGuess            = "GUESS"
	MsgToggleDifficulty = "TOGGLE_DIFFICULTY"
	MsgContinue         = "CONTINUE"
	MsgHelp             = "HELP"
	MsgStatus           = "STATUS"
	MsgPing             = "PING"

	MsgRoundUpdate  = "ROUND_UPDATE"
	MsgSessionEnded = "SESSION_ENDED"
	MsgPong         = "PONG"
	MsgError        = "ERROR"
)

type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Data      interface{} `json:"data"`
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	SessionID string
	Conn      *websocket.Conn
	send      chan *Message
}

type sessionMessage struct {
	sessionID string
	message   *Message
}

// WebSocketHub tracks live connections per session. All client
// bookkeeping happens on the run goroutine, and a client's send channel is
// closed only when it unregisters.
type WebSocketHub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *sessionMessage
}

type WebSocketHandler struct {
	gameService *services.GameService
	hub         *WebSocketHub
}

func NewWebSocketHandler(gameService *services.GameService) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *sessionMessage, 100),
	}

	go hub.run()

	return &WebSocketHandler{
		gameService: gameService,
		hub:         hub,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.GetString("session_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade to websocket")
		return
	}

	client := &Client{
		SessionID: sessionID,
		Conn:      conn,
		send:      make(chan *Message, sendBufferSize),
	}

	h.hub.register <- client
	go client.writePump()

	defer func() {
		h.hub.unregister <- client
	}()

	h.sendStatus(c.Request.Context(), client)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("session_id", sessionID).Msg("websocket error")
			}
			break
		}

		h.handleMessage(c, client, &msg)
	}
}

// Results of successful actions reach the client through the broadcast
// that GameService emits, so only errors are answered directly here.
func (h *WebSocketHandler) handleMessage(c *gin.Context, client *Client, msg *inboundMessage) {
	ctx := c.Request.Context()
	var err error

	switch strings.ToUpper(msg.Type) {
	case MsgPing:
		client.reply(MsgPong, gin.H{"timestamp": time.Now().Unix()})
		return
	case MsgHelp:
		client.reply(MsgHelp, gin.H{"help": h.gameService.Help()})
		return
	case MsgStatus:
		h.sendStatus(ctx, client)
		return
	case MsgStart:
		var difficulty *game.Difficulty
		var raw string
		if len(msg.Data) > 0 && json.Unmarshal(msg.Data, &raw) == nil && raw != "" {
			d, perr := game.ParseDifficulty(raw)
			if perr != nil {
				client.reply(MsgError, gin.H{"error": perr.Error()})
				return
			}
			difficulty = &d
		}
		_, _, err = h.gameService.Start(ctx, client.SessionID, difficulty)
	case MsgGuess:
		var guess models.GuessInput
		if uerr := json.Unmarshal(msg.Data, &guess); uerr != nil {
			client.reply(MsgError, gin.H{"error": "Guess is required"})
			return
		}
		_, _, err = h.gameService.Guess(ctx, client.SessionID, string(guess))
	case MsgToggleDifficulty:
		_, _, err = h.gameService.ToggleDifficulty(ctx, client.SessionID)
	case MsgContinue:
		_, _, err = h.gameService.Continue(ctx, client.SessionID)
	default:
		client.reply(MsgError, gin.H{"error": "Unknown message type: " + msg.Type})
		return
	}

	if err != nil {
		client.reply(MsgError, gin.H{"error": err.Error()})
	}
}

func (h *WebSocketHandler) sendStatus(ctx context.Context, client *Client) {
	status, err := h.gameService.Status(ctx, client.SessionID)
	if err != nil {
		client.reply(MsgError, gin.H{"error": err.Error()})
		return
	}
	client.reply(MsgStatus, status)
}

func (h *WebSocketHandler) BroadcastRoundUpdate(sessionID string, result game.Result, status models.SessionStatus) {
	h.hub.broadcast <- &sessionMessage{
		sessionID: sessionID,
		message: &Message{
			Type:      MsgRoundUpdate,
			SessionID: sessionID,
			Data: gin.H{
				"result":  result,
				"session": status,
			},
		},
	}
}

func (h *WebSocketHandler) BroadcastSessionEnded(sessionID string) {
	h.hub.broadcast <- &sessionMessage{
		sessionID: sessionID,
		message: &Message{
			Type:      MsgSessionEnded,
			SessionID: sessionID,
			Data:      gin.H{"timestamp": time.Now().Unix()},
		},
	}
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			if hub.clients[client.SessionID] == nil {
				hub.clients[client.SessionID] = make(map[*Client]struct{})
			}
			hub.clients[client.SessionID][client] = struct{}{}
			log.Debug().Str("session_id", client.SessionID).Msg("websocket client registered")

		case client := <-hub.unregister:
			hub.remove(client)

		case sm := <-hub.broadcast:
			for client := range hub.clients[sm.sessionID] {
				select {
				case client.send <- sm.message:
				default:
					log.Warn().Str("session_id", sm.sessionID).Str("type", sm.message.Type).Msg("dropping update for slow websocket client")
				}
			}
		}
	}
}

func (hub *WebSocketHub) remove(client *Client) {
	clients, ok := hub.clients[client.SessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	if len(clients) == 0 {
		delete(hub.clients, client.SessionID)
	}
	close(client.send)
	log.Debug().Str("session_id", client.SessionID).Msg("websocket client unregistered")
}

// reply queues a message without blocking the read loop.
func (client *Client) reply(msgType string, data interface{}) {
	select {
	case client.send <- &Message{Type: msgType, SessionID: client.SessionID, Data: data}:
	default:
		log.Warn().Str("session_id", client.SessionID).Msg("websocket send buffer full")
	}
}

func (client *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

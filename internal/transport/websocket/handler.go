package websocket

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/auth"
	"github.com/iamasit07/connect4-engine/pkg/httputil"
	"github.com/rs/zerolog"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Sessions    *game.SessionManager
	Tokens      *auth.TokenManager
	Upgrader    websocket.Upgrader
	log         zerolog.Logger
}

// NewHandler creates a new WebSocket handler with dependencies
func NewHandler(cm *ConnectionManager, sessions *game.SessionManager, tokens *auth.TokenManager, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		ConnManager: cm,
		Sessions:    sessions,
		Tokens:      tokens,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: logger.With().Str("component", "ws").Logger(),
	}
}

// requests without an Origin header come from non-browser clients
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket upgrades the request and serves the connection until it closes
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("upgrade error")
		return
	}

	// browsers carry the token from POST /api/sessions as a cookie
	cookieToken, _ := httputil.TokenFromRequest(c.Request)
	h.handleConnection(conn, cookieToken)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn, cookieToken string) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)

	// Keep-alive pinger; WriteControl may run alongside other writers
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	// 1. Wait for initialization
	session, err := h.initSession(conn, cookieToken)
	if err != nil {
		h.log.Info().Err(err).Msg("connection rejected during init")
		conn.WriteJSON(ServerMessage{Type: MsgError, Message: err.Error()})
		conn.Close()
		return
	}

	defer func() {
		h.log.Debug().Str("session", session.ID).Msg("connection closed")
		h.ConnManager.RemoveConnectionIfMatching(session.ID, conn)
	}()

	// 2. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Info().Err(err).Str("session", session.ID).Msg("client disconnected unexpectedly")
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Debug().Err(err).Msg("invalid message format")
			h.ConnManager.SendMessage(session.ID, ServerMessage{Type: MsgError, Message: "invalid message"})
			continue
		}

		h.processMessage(session, msg)
	}
}

// initSession reads the first message. A valid token, from the message or the
// upgrade request, resumes its board; any other init starts a new one.
func (h *Handler) initSession(conn *websocket.Conn, cookieToken string) (*game.Session, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "init" {
		return nil, errExpectedInit
	}

	token := msg.Token
	if token == "" {
		token = cookieToken
	}
	var session *game.Session
	if token != "" {
		if claims, err := h.Tokens.ValidateSessionToken(token); err == nil {
			session, _ = h.Sessions.GetSession(claims.SessionID)
		}
	}

	if session == nil {
		session = h.Sessions.CreateSession()
		if token, err = h.Tokens.GenerateSessionToken(session.ID); err != nil {
			h.Sessions.RemoveSession(session.ID)
			return nil, err
		}
	}

	h.ConnManager.AddConnection(session.ID, conn)

	snap := session.Snapshot()
	h.ConnManager.SendMessage(session.ID, ServerMessage{
		Type:      MsgSession,
		SessionID: session.ID,
		Token:     token,
		Board:     &snap.Board,
		Turn:      snap.Turn,
		State:     snap.State,
		Cells:     snap.Winning,
	})

	h.log.Info().Str("session", session.ID).Msg("connection initialized")
	return session, nil
}

// processMessage routes specific actions
func (h *Handler) processMessage(session *game.Session, msg ClientMessage) {
	switch msg.Type {
	case "play":
		if _, _, err := session.Play(msg.Column); err != nil {
			h.ConnManager.SendMessage(session.ID, ServerMessage{Type: MsgError, Message: err.Error()})
		}

	case "restart":
		session.Restart()

	default:
		h.ConnManager.SendMessage(session.ID, ServerMessage{Type: MsgError, Message: "unknown message type"})
	}
}

var errExpectedInit = errors.New("expected an init message")

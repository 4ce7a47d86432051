package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-engine/pkg/auth"
	"github.com/iamasit07/connect4-engine/pkg/httputil"
	"github.com/rs/zerolog"
)

type SessionHandler struct {
	Sessions *game.SessionManager
	Tokens   *auth.TokenManager
	log      zerolog.Logger
}

func NewSessionHandler(sessions *game.SessionManager, tokens *auth.TokenManager, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		Sessions: sessions,
		Tokens:   tokens,
		log:      logger.With().Str("component", "http").Logger(),
	}
}

type createSessionResponse struct {
	SessionID string        `json:"sessionId"`
	Token     string        `json:"token"`
	Game      game.Snapshot `json:"game"`
}

type playRequest struct {
	Column *int `json:"column" binding:"required"`
}

type playResponse struct {
	Outcome game.Outcome  `json:"outcome"`
	Game    game.Snapshot `json:"game"`
}

// CreateSession starts a new board and returns the token that controls it
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session := h.Sessions.CreateSession()

	token, err := h.Tokens.GenerateSessionToken(session.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sign session token")
		h.Sessions.RemoveSession(session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	httputil.SetSessionCookie(c.Writer, c.Request, token, h.Tokens.TTL())
	c.JSON(http.StatusCreated, createSessionResponse{
		SessionID: session.ID,
		Token:     token,
		Game:      session.Snapshot(),
	})
}

// ListSessions returns all live boards
func (h *SessionHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Sessions.ActiveSessions())
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentSession(c).Snapshot())
}

// Play drops a piece. Misplays come back as outcome "ignored" with the board
// unchanged.
func (h *SessionHandler) Play(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	outcome, snap, err := middleware.CurrentSession(c).Play(*req.Column)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, playResponse{Outcome: outcome, Game: snap})
}

func (h *SessionHandler) Restart(c *gin.Context) {
	snap := middleware.CurrentSession(c).Restart()
	c.JSON(http.StatusOK, playResponse{Outcome: game.OutcomeReset, Game: snap})
}

func (h *SessionHandler) EndSession(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if err := h.Sessions.RemoveSession(session.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	httputil.ClearSessionCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

// RegisterRoutes mounts the session API on router.
func (h *SessionHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/sessions", h.CreateSession)
	router.GET("/api/sessions", h.ListSessions)

	protected := router.Group("/api/session")
	protected.Use(middleware.SessionAuth(h.Tokens, h.Sessions))
	{
		protected.GET("", h.GetSession)
		protected.POST("/play", h.Play)
		protected.POST("/restart", h.Restart)
		protected.DELETE("", h.EndSession)
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/auth"
	"github.com/iamasit07/connect4-engine/pkg/httputil"
)

// SessionKey is the gin context key holding the caller's *game.Session.
const SessionKey = "session"

// SessionAuth resolves the session cookie or bearer token to a live session.
func SessionAuth(tokens *auth.TokenManager, sessions *game.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.TokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.ValidateSessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, exists := sessions.GetSession(claims.SessionID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Session expired"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionAuth.
func CurrentSession(c *gin.Context) *game.Session {
	session, _ := c.MustGet(SessionKey).(*game.Session)
	return session
}

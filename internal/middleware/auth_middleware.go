package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/auth"
	"taskboard/internal/session"
)

const (
	UserIDKey    = "userID"
	SessionIDKey = "sessionID"
)

type TokenParser interface {
	ParseToken(tokenStr string) (uuid.UUID, string, error)
}

type SessionLookup interface {
	Current(ctx context.Context, sid string) (uuid.UUID, error)
}

// JWTAuthMiddleware admits a request only when its bearer token is valid and
// the session it was issued for is still open.
func JWTAuthMiddleware(tokens TokenParser, sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, sessionID, err := tokens.ParseToken(parts[1])
		if errors.Is(err, auth.ErrInvalidClaims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		owner, err := sessions.Current(c.Request.Context(), sessionID)
		if err != nil && !errors.Is(err, session.ErrNoSession) {
			log.WithError(err).Error("❌ session lookup failed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session store unavailable"})
			return
		}
		if err != nil || owner != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended, please sign in again"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// CurrentUser returns the user id set by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func CurrentSession(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

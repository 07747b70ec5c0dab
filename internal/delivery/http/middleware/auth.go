package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CtxUserIDKey = "user_id"

type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller id under CtxUserIDKey.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerTokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c, "missing bearer token")
			return
		}

		userID, err := m.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthenticated(c, "token expired")
				return
			}
			abortUnauthenticated(c, "invalid token")
			return
		}

		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller, or uuid.Nil.
func CurrentUserID(c *gin.Context) uuid.UUID {
	v, exists := c.Get(CtxUserIDKey)
	if !exists {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"code":  "unauthenticated",
	})
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

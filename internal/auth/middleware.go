package auth

import (
	"net/http"
	"strings"

	"pokehub-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys set for an authenticated request. The user id key is
// also read by the logger and the rate limiter.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// AuthMiddleware authenticates requests with bearer JWTs
type AuthMiddleware struct {
	verifier *Verifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier *Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.verifier.ValidateJWT(token)
		if err != nil {
			logger.WithContext(c).WithError(err).Debug("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the user when a valid bearer token is present.
// Missing or bad tokens leave the request anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := m.verifier.ValidateJWT(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
}

// GetUserID returns the authenticated user's id, if any
func GetUserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}

// GetUsername returns the authenticated user's display name, if any
func GetUsername(c *gin.Context) (string, bool) {
	name := c.GetString(ContextUsername)
	return name, name != ""
}

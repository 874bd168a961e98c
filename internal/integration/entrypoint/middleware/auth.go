// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key under which Authenticate stores the caller's
// user ID for the handlers downstream.
const UserIDKey ContextKey = "auth.userID"

// bearerPrefix is the expected Authorization scheme.
const bearerPrefix = "Bearer "

// AuthMiddleware guards routes behind access-token validation.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate returns a handler that rejects requests without a valid
// bearer token and resolves the caller's user ID for the route handlers.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, message := extractBearerToken(c.GetHeader("Authorization"))
		if message != "" {
			abortUnauthorized(c, code, message)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Next()
	}
}

// extractBearerToken pulls the token out of an Authorization header value.
// On failure it returns the error code and message to respond with.
func extractBearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	switch {
	case header == "":
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	case !strings.HasPrefix(header, bearerPrefix):
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func abortUnauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}

// GetUserIDFromContext returns the user ID stored by Authenticate, or false
// when the route ran without it.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextAdminID = "adminID"
	ContextEmail   = "email"
)

// adminLookup resolves the admin account behind a token
type adminLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

// AuthMiddleware guards the admin panel routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
	admins     adminLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, admins adminLookup) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		admins:     admins,
	}
}

// JWTAuth validates the Bearer access token and loads the admin identity
// into the request context. Tokens of deleted admins are rejected.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenString, err := extractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, auth.TokenTypeAccess)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		if _, err := m.admins.GetByID(c.Request.Context(), claims.AdminID); err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// extractBearerToken pulls the token out of an Authorization header
func extractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", apperrors.ErrTokenInvalid
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", apperrors.ErrTokenNotFound
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// AdminIDFromContext returns the authenticated admin id set by JWTAuth
func AdminIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

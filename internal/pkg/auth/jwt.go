package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

// Token type claims
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	TokenIssuer     string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content for admin sessions
type Claims struct {
	AdminID   int64  `json:"adminId"`
	Email     string `json:"email"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// GenerateTokenPair creates an access and refresh token pair for an admin
func (s *JWTService) GenerateTokenPair(admin *models.Admin) (accessToken, refreshToken string, expiresIn, refreshExpiresIn int, err error) {
	accessToken, err = s.generateToken(admin, TokenTypeAccess, s.config.AccessTokenExp)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err = s.generateToken(admin, TokenTypeRefresh, s.config.RefreshTokenExp)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return accessToken, refreshToken,
		int(s.config.AccessTokenExp.Seconds()),
		int(s.config.RefreshTokenExp.Seconds()),
		nil
}

func (s *JWTService) generateToken(admin *models.Admin, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID:   admin.ID,
		Email:     admin.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", admin.ID),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SecretKey))
}

// ValidateToken parses and validates a token of the expected type
func (s *JWTService) ValidateToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	if claims.TokenType != expectedType {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/auth"
	"github.com/okulsport/okulsport-backend/internal/pkg/validation"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, adminID int64) (*dto.AdminProfileResponse, error)
}

// adminStore is the admin account persistence contract
type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	admins     adminStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(admins adminStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		admins:     admins,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same error on purpose.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.ErrInvalidCredentials
	}

	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(admin)
}

// RefreshToken exchanges a valid refresh token for a new pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtService.ValidateToken(req.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	return s.issueTokens(admin)
}

func (s *authServiceImpl) issueTokens(admin *models.Admin) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Msg("Token pair issued")

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}

// GetProfile retrieves the authenticated admin's own profile
func (s *authServiceImpl) GetProfile(ctx context.Context, adminID int64) (*dto.AdminProfileResponse, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &dto.AdminProfileResponse{
		ID:       admin.ID,
		Email:    admin.Email,
		FullName: admin.FullName,
	}, nil
}

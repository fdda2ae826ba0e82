package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/auth"
)

type fakeAdminStore struct {
	admin *models.Admin
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	if f.admin == nil || f.admin.Email != email {
		return nil, apperrors.ErrAdminNotFound
	}
	return f.admin, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	if f.admin == nil || f.admin.ID != id {
		return nil, apperrors.ErrAdminNotFound
	}
	return f.admin, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func testAdmin(t *testing.T) *models.Admin {
	t.Helper()
	hash, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &models.Admin{
		ID:           1,
		Email:        "admin@okulsport.app",
		PasswordHash: hash,
		FullName:     "Admin",
	}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(&fakeAdminStore{admin: testAdmin(t)}, testJWTService(), zerolog.Nop())

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@okulsport.app",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("token pair incomplete")
	}
	if tokens.TokenType != "Bearer" {
		t.Errorf("tokenType = %q, want Bearer", tokens.TokenType)
	}
	if tokens.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", tokens.ExpiresIn)
	}
}

func TestLoginMalformedEmail(t *testing.T) {
	// A store match must not matter; a malformed address is rejected
	// before any lookup.
	admin := testAdmin(t)
	admin.Email = "not an address"
	svc := NewAuthService(&fakeAdminStore{admin: admin}, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "not an address",
		Password: "correct-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(&fakeAdminStore{admin: testAdmin(t)}, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@okulsport.app",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	// An unknown email answers exactly like a wrong password.
	svc := NewAuthService(&fakeAdminStore{admin: testAdmin(t)}, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@okulsport.app",
		Password: "correct-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshToken(t *testing.T) {
	jwtService := testJWTService()
	admin := testAdmin(t)
	svc := NewAuthService(&fakeAdminStore{admin: admin}, jwtService, zerolog.Nop())

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@okulsport.app",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh did not issue a new access token")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	jwtService := testJWTService()
	admin := testAdmin(t)
	svc := NewAuthService(&fakeAdminStore{admin: admin}, jwtService, zerolog.Nop())

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@okulsport.app",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.AccessToken,
	})
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

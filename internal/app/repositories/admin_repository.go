package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/dberrors"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// Create inserts an admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	query := `
		INSERT INTO admins (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, admin.Email, admin.PasswordHash, admin.FullName).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM admins
		WHERE email = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.FullName,
		&admin.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM admins
		WHERE id = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.FullName,
		&admin.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

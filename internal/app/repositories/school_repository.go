package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/logger"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// GetOrCreateTx resolves a school by its (name, district) pair inside the
// caller's transaction, creating the row on first reference. The returned
// id is guaranteed to exist by the time the caller proceeds.
//
// When the school already exists, its stored side/type win over the
// submitted values; a mismatch is logged and otherwise ignored.
func (r *SchoolRepository) GetOrCreateTx(ctx context.Context, tx pgx.Tx, school *models.School) (int64, error) {
	var (
		id         int64
		storedSide models.Side
		storedType models.SchoolType
	)

	query := `
		SELECT id, side, type
		FROM schools
		WHERE name = $1 AND district = $2
	`

	err := tx.QueryRow(ctx, query, school.Name, school.District).Scan(&id, &storedSide, &storedType)
	if err == nil {
		if storedSide != school.Side || storedType != school.Type {
			logger.Warn().
				Int64("schoolId", id).
				Str("storedSide", string(storedSide)).
				Str("submittedSide", string(school.Side)).
				Str("storedType", string(storedType)).
				Str("submittedType", string(school.Type)).
				Msg("Submitted school attributes differ from stored row, keeping stored values")
		}
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error resolving school: %w", err)
	}

	// Not found: insert, deferring to the unique constraint for the case
	// where a concurrent writer creates the same school first.
	insert := `
		INSERT INTO schools (name, district, side, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT schools_name_district_key DO NOTHING
		RETURNING id
	`

	err = tx.QueryRow(ctx, insert, school.Name, school.District, school.Side, school.Type).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error creating school: %w", err)
	}

	// Raced: the row exists now, re-select it
	err = tx.QueryRow(ctx, `SELECT id FROM schools WHERE name = $1 AND district = $2`,
		school.Name, school.District).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error re-resolving school after conflict: %w", err)
	}

	return id, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT id, name, district, side, type, created_at
		FROM schools
		WHERE id = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, id).Scan(
		&school.ID,
		&school.Name,
		&school.District,
		&school.Side,
		&school.Type,
		&school.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// GetAll retrieves all schools ordered by district and name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `
		SELECT id, name, district, side, type, created_at
		FROM schools
		ORDER BY district, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(
			&school.ID,
			&school.Name,
			&school.District,
			&school.Side,
			&school.Type,
			&school.CreatedAt,
		); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

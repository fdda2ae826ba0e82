package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// ApplicationRepository handles database operations for Istanbul
// tournament applications.
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// FindIDBySchoolTx returns the id of the school's existing application,
// if any. This is the uniqueness guard query of the submission path.
func (r *ApplicationRepository) FindIDBySchoolTx(ctx context.Context, tx pgx.Tx, schoolID int64) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM applications WHERE school_id = $1`, schoolID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error checking existing application: %w", err)
	}
	return id, true, nil
}

// FindIDBySchool is the pool-backed variant of FindIDBySchoolTx. The
// submission path uses it after a rolled-back insert to name the
// application that won the race.
func (r *ApplicationRepository) FindIDBySchool(ctx context.Context, schoolID int64) (int64, bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM applications WHERE school_id = $1`, schoolID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error checking existing application: %w", err)
	}
	return id, true, nil
}

// CreateTx inserts the parent application row inside the caller's
// transaction and returns the generated id.
func (r *ApplicationRepository) CreateTx(ctx context.Context, tx pgx.Tx, app *models.Application) (int64, error) {
	query := `
		INSERT INTO applications (school_id, teacher_name, teacher_phone, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		app.SchoolID, app.TeacherName, app.TeacherPhone,
		helpers.GetContentNullString(app.Notes)).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// AddCategoryTx inserts one category child row inside the caller's
// transaction. Rows are inserted in input order; duplicates are legal.
func (r *ApplicationRepository) AddCategoryTx(ctx context.Context, tx pgx.Tx, cat *models.ApplicationCategory) (int64, error) {
	query := `
		INSERT INTO application_categories (application_id, sport_branch, age_category)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query, cat.ApplicationID, cat.SportBranch, cat.AgeCategory).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves an application with its school and categories
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT a.id, a.school_id, a.teacher_name, a.teacher_phone,
		       COALESCE(a.notes, ''), a.created_at,
		       s.name, s.district, s.side, s.type
		FROM applications a
		JOIN schools s ON s.id = a.school_id
		WHERE a.id = $1
	`

	var (
		app    models.Application
		school models.School
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.SchoolID,
		&app.TeacherName,
		&app.TeacherPhone,
		&app.Notes,
		&app.CreatedAt,
		&school.Name,
		&school.District,
		&school.Side,
		&school.Type,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	school.ID = app.SchoolID
	app.School = &school

	categories, err := r.getCategories(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	app.Categories = categories

	return &app, nil
}

// getCategories loads the category children in insertion order
func (r *ApplicationRepository) getCategories(ctx context.Context, applicationID int64) ([]models.ApplicationCategory, error) {
	query := `
		SELECT id, application_id, sport_branch, age_category
		FROM application_categories
		WHERE application_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.ApplicationCategory
	for rows.Next() {
		var cat models.ApplicationCategory
		if err := rows.Scan(&cat.ID, &cat.ApplicationID, &cat.SportBranch, &cat.AgeCategory); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetAll retrieves a page of applications with their schools, newest first
func (r *ApplicationRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Application, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	query := `
		SELECT a.id, a.school_id, a.teacher_name, a.teacher_phone,
		       COALESCE(a.notes, ''), a.created_at,
		       s.name, s.district, s.side, s.type
		FROM applications a
		JOIN schools s ON s.id = a.school_id
		ORDER BY a.created_at DESC, a.id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var (
			app    models.Application
			school models.School
		)
		if err := rows.Scan(
			&app.ID,
			&app.SchoolID,
			&app.TeacherName,
			&app.TeacherPhone,
			&app.Notes,
			&app.CreatedAt,
			&school.Name,
			&school.District,
			&school.Side,
			&school.Type,
		); err != nil {
			return nil, 0, err
		}
		school.ID = app.SchoolID
		app.School = &school
		applications = append(applications, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// Delete deletes an application; category children cascade
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

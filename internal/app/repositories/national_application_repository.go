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

// NationalApplicationRepository handles database operations for national
// tournament applications.
type NationalApplicationRepository struct {
	db *pgxpool.Pool
}

// NewNationalApplicationRepository creates a new national application repository
func NewNationalApplicationRepository(db *pgxpool.Pool) *NationalApplicationRepository {
	return &NationalApplicationRepository{
		db: db,
	}
}

// FindIDBySchoolTx returns the id of the school's existing national
// application, if any.
func (r *NationalApplicationRepository) FindIDBySchoolTx(ctx context.Context, tx pgx.Tx, schoolID int64) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM national_applications WHERE school_id = $1`, schoolID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error checking existing national application: %w", err)
	}
	return id, true, nil
}

// FindIDBySchool is the pool-backed variant of FindIDBySchoolTx, used
// after a rolled-back insert to name the application that won the race.
func (r *NationalApplicationRepository) FindIDBySchool(ctx context.Context, schoolID int64) (int64, bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM national_applications WHERE school_id = $1`, schoolID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error checking existing national application: %w", err)
	}
	return id, true, nil
}

// CreateTx inserts the parent row inside the caller's transaction
func (r *NationalApplicationRepository) CreateTx(ctx context.Context, tx pgx.Tx, app *models.NationalApplication) (int64, error) {
	query := `
		INSERT INTO national_applications (school_id, teacher_name, teacher_phone, notes)
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

// AddCategoryTx inserts one category child row inside the caller's transaction
func (r *NationalApplicationRepository) AddCategoryTx(ctx context.Context, tx pgx.Tx, cat *models.NationalApplicationCategory) (int64, error) {
	query := `
		INSERT INTO national_application_categories (national_application_id, sport_branch, age_category)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query, cat.NationalApplicationID, cat.SportBranch, cat.AgeCategory).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a national application with its directory school and
// categories.
func (r *NationalApplicationRepository) GetByID(ctx context.Context, id int64) (*models.NationalApplication, error) {
	query := `
		SELECT n.id, n.school_id, n.teacher_name, n.teacher_phone,
		       COALESCE(n.notes, ''), n.created_at,
		       o.name, o.city, o.district
		FROM national_applications n
		JOIN okullar o ON o.id = n.school_id
		WHERE n.id = $1
	`

	var (
		app  models.NationalApplication
		okul models.Okul
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID,
		&app.SchoolID,
		&app.TeacherName,
		&app.TeacherPhone,
		&app.Notes,
		&app.CreatedAt,
		&okul.Name,
		&okul.City,
		&okul.District,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving national application: %w", err)
	}

	okul.ID = app.SchoolID
	app.Okul = &okul

	categories, err := r.getCategories(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	app.Categories = categories

	return &app, nil
}

func (r *NationalApplicationRepository) getCategories(ctx context.Context, applicationID int64) ([]models.NationalApplicationCategory, error) {
	query := `
		SELECT id, national_application_id, sport_branch, age_category
		FROM national_application_categories
		WHERE national_application_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.NationalApplicationCategory
	for rows.Next() {
		var cat models.NationalApplicationCategory
		if err := rows.Scan(&cat.ID, &cat.NationalApplicationID, &cat.SportBranch, &cat.AgeCategory); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetAll retrieves a page of national applications, newest first
func (r *NationalApplicationRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.NationalApplication, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM national_applications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting national applications: %w", err)
	}

	query := `
		SELECT n.id, n.school_id, n.teacher_name, n.teacher_phone,
		       COALESCE(n.notes, ''), n.created_at,
		       o.name, o.city, o.district
		FROM national_applications n
		JOIN okullar o ON o.id = n.school_id
		ORDER BY n.created_at DESC, n.id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []*models.NationalApplication
	for rows.Next() {
		var (
			app  models.NationalApplication
			okul models.Okul
		)
		if err := rows.Scan(
			&app.ID,
			&app.SchoolID,
			&app.TeacherName,
			&app.TeacherPhone,
			&app.Notes,
			&app.CreatedAt,
			&okul.Name,
			&okul.City,
			&okul.District,
		); err != nil {
			return nil, 0, err
		}
		okul.ID = app.SchoolID
		app.Okul = &okul
		applications = append(applications, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// Delete deletes a national application; category children cascade
func (r *NationalApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM national_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting national application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

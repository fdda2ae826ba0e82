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

// StudentRepository handles database operations for student registrations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// CreateTx inserts one student row inside the caller's transaction and
// returns the generated id. Rows are inserted in input order.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, st *models.StudentRegistration) (int64, error) {
	query := `
		INSERT INTO students (school_id, first_name, last_name, birth_date,
		                      sport_branch, age_category, weight_class,
		                      registration_number, teacher_name, teacher_phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		st.SchoolID, st.FirstName, st.LastName, st.BirthDate,
		st.SportBranch,
		helpers.GetContentNullString(st.AgeCategory),
		helpers.GetContentNullString(st.WeightClass),
		helpers.GetContentNullString(st.RegistrationNumber),
		st.TeacherName, st.TeacherPhone,
		helpers.GetContentNullString(st.Notes)).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a student registration with its school
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentRegistration, error) {
	query := `
		SELECT st.id, st.school_id, st.first_name, st.last_name, st.birth_date,
		       st.sport_branch, COALESCE(st.age_category, ''),
		       COALESCE(st.weight_class, ''), COALESCE(st.registration_number, ''),
		       st.teacher_name, st.teacher_phone, COALESCE(st.notes, ''), st.created_at,
		       s.name, s.district, s.side, s.type
		FROM students st
		JOIN schools s ON s.id = st.school_id
		WHERE st.id = $1
	`

	var (
		st     models.StudentRegistration
		school models.School
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.SchoolID,
		&st.FirstName,
		&st.LastName,
		&st.BirthDate,
		&st.SportBranch,
		&st.AgeCategory,
		&st.WeightClass,
		&st.RegistrationNumber,
		&st.TeacherName,
		&st.TeacherPhone,
		&st.Notes,
		&st.CreatedAt,
		&school.Name,
		&school.District,
		&school.Side,
		&school.Type,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	school.ID = st.SchoolID
	st.School = &school

	return &st, nil
}

// StudentFilter narrows the admin listing
type StudentFilter struct {
	SportBranch string
	SchoolID    int64
}

// GetAll retrieves a page of student registrations, newest first
func (r *StudentRepository) GetAll(ctx context.Context, filter StudentFilter, offset uint64, limit int) ([]*models.StudentRegistration, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM students
		WHERE ($1 = '' OR sport_branch = $1)
		  AND ($2 = 0 OR school_id = $2)
	`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.SportBranch, filter.SchoolID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT st.id, st.school_id, st.first_name, st.last_name, st.birth_date,
		       st.sport_branch, COALESCE(st.age_category, ''),
		       COALESCE(st.weight_class, ''), COALESCE(st.registration_number, ''),
		       st.teacher_name, st.teacher_phone, COALESCE(st.notes, ''), st.created_at,
		       s.name, s.district, s.side, s.type
		FROM students st
		JOIN schools s ON s.id = st.school_id
		WHERE ($1 = '' OR st.sport_branch = $1)
		  AND ($2 = 0 OR st.school_id = $2)
		ORDER BY st.created_at DESC, st.id DESC
		OFFSET $3 LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, filter.SportBranch, filter.SchoolID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.StudentRegistration
	for rows.Next() {
		var (
			st     models.StudentRegistration
			school models.School
		)
		if err := rows.Scan(
			&st.ID,
			&st.SchoolID,
			&st.FirstName,
			&st.LastName,
			&st.BirthDate,
			&st.SportBranch,
			&st.AgeCategory,
			&st.WeightClass,
			&st.RegistrationNumber,
			&st.TeacherName,
			&st.TeacherPhone,
			&st.Notes,
			&st.CreatedAt,
			&school.Name,
			&school.District,
			&school.Side,
			&school.Type,
		); err != nil {
			return nil, 0, err
		}
		school.ID = st.SchoolID
		st.School = &school
		students = append(students, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update edits a student row. School and branch are never touched: a
// registration stays with the school and branch it was submitted for.
func (r *StudentRepository) Update(ctx context.Context, st *models.StudentRegistration) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, birth_date = $3,
		    weight_class = $4, registration_number = $5, notes = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		st.FirstName, st.LastName, st.BirthDate,
		helpers.GetContentNullString(st.WeightClass),
		helpers.GetContentNullString(st.RegistrationNumber),
		helpers.GetContentNullString(st.Notes),
		st.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes one student registration
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

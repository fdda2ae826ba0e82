package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/db"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
	"github.com/okulsport/okulsport-backend/internal/pkg/validation"
	"github.com/okulsport/okulsport-backend/internal/reference"
)

// StudentService defines the interface for student registration operations
type StudentService interface {
	Register(ctx context.Context, req *dto.CreateStudentRegistrationRequest) (*dto.StudentRegistrationCreatedResponse, error)
	GetAll(ctx context.Context, filter repositories.StudentFilter, page, size int) ([]dto.StudentResponse, dto.PaginationInfo, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
}

// studentStore is the student registration persistence contract
type studentStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, st *models.StudentRegistration) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudentRegistration, error)
	GetAll(ctx context.Context, filter repositories.StudentFilter, offset uint64, limit int) ([]*models.StudentRegistration, int64, error)
	Update(ctx context.Context, st *models.StudentRegistration) error
	Delete(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	txRunner db.TxRunner
	schools  schoolStore
	students studentStore
	catalog  *reference.Catalog
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(txRunner db.TxRunner, schools schoolStore, students studentStore, catalog *reference.Catalog, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		txRunner: txRunner,
		schools:  schools,
		students: students,
		catalog:  catalog,
		logger:   logger,
	}
}

// validateRegistration checks the whole submission before any row is
// written. registrationNumber is only enforced for branches the catalog
// marks as federation-licensed (Taekwondo), and the error names the
// student it applies to.
func (s *studentServiceImpl) validateRegistration(req *dto.CreateStudentRegistrationRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}

	req.School.Name = strings.TrimSpace(req.School.Name)
	req.School.District = strings.TrimSpace(req.School.District)

	if req.School.Name == "" {
		return apperrors.NewValidationError("school.name is required")
	}
	if req.School.District == "" {
		return apperrors.NewValidationError("school.district is required")
	}
	if !models.ValidSide(req.School.Side) {
		return apperrors.NewValidationError("school.side must be Anadolu or Avrupa")
	}
	if !models.ValidSchoolType(req.School.Type) {
		return apperrors.NewValidationError("school.type must be Orta or Lise")
	}
	if validation.IsBlank(req.SportBranch) {
		return apperrors.NewValidationError("sportBranch is required")
	}
	if validation.IsBlank(req.TeacherName) {
		return apperrors.NewValidationError("teacherName is required")
	}
	if !validation.IsValidName(req.TeacherName) {
		return apperrors.NewValidationError("teacherName must be between 2 and 100 characters")
	}
	if validation.IsBlank(req.TeacherPhone) {
		return apperrors.NewValidationError("teacherPhone is required")
	}
	if !validation.IsValidPhone(req.TeacherPhone) {
		return apperrors.NewValidationError("teacherPhone is not a valid phone number")
	}
	if len(req.Students) == 0 {
		return apperrors.NewValidationError("students must be a non-empty list")
	}

	registrationRequired := s.catalog.RegistrationRequired(req.SportBranch)

	for i, st := range req.Students {
		if validation.IsBlank(st.FirstName) {
			return apperrors.NewValidationError(fmt.Sprintf("students[%d].firstName is required", i))
		}
		if validation.IsBlank(st.LastName) {
			return apperrors.NewValidationError(fmt.Sprintf("students[%d].lastName is required", i))
		}
		if _, err := helpers.ParseBirthDate(st.BirthDate); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("students[%d].birthDate must be in YYYY-MM-DD form", i))
		}
		if registrationRequired && validation.IsBlank(st.RegistrationNumber) {
			return apperrors.NewValidationError(fmt.Sprintf(
				"registrationNumber is required for %s: student %s %s has none",
				req.SportBranch, st.FirstName, st.LastName))
		}
	}

	return nil
}

// Register persists a batch of students for one school and branch as a
// single transaction. Students are inserted in input order; there is no
// uniqueness guard on this path.
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.CreateStudentRegistrationRequest) (*dto.StudentRegistrationCreatedResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	var (
		schoolID int64
		created  []dto.CreatedStudent
	)

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		schoolID, err = s.schools.GetOrCreateTx(ctx, tx, &models.School{
			Name:     req.School.Name,
			District: req.School.District,
			Side:     models.Side(req.School.Side),
			Type:     models.SchoolType(req.School.Type),
		})
		if err != nil {
			return fmt.Errorf("error resolving school: %w", err)
		}

		for i, item := range req.Students {
			birthDate, err := helpers.ParseBirthDate(item.BirthDate)
			if err != nil {
				return apperrors.NewValidationError(fmt.Sprintf("students[%d].birthDate must be in YYYY-MM-DD form", i))
			}

			id, err := s.students.CreateTx(ctx, tx, &models.StudentRegistration{
				SchoolID:           schoolID,
				FirstName:          item.FirstName,
				LastName:           item.LastName,
				BirthDate:          birthDate,
				SportBranch:        req.SportBranch,
				AgeCategory:        item.AgeCategory,
				WeightClass:        item.WeightClass,
				RegistrationNumber: item.RegistrationNumber,
				TeacherName:        req.TeacherName,
				TeacherPhone:       req.TeacherPhone,
				Notes:              req.Notes,
			})
			if err != nil {
				return fmt.Errorf("error creating student %d: %w", i, err)
			}

			created = append(created, dto.CreatedStudent{
				ID:        id,
				FirstName: item.FirstName,
				LastName:  item.LastName,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("schoolId", schoolID).
		Str("sportBranch", req.SportBranch).
		Int("students", len(created)).
		Msg("Students registered")

	return &dto.StudentRegistrationCreatedResponse{
		Message:  "Kayıt alındı",
		SchoolID: schoolID,
		Students: created,
	}, nil
}

// GetAll retrieves a page of student registrations for the admin panel
func (s *studentServiceImpl) GetAll(ctx context.Context, filter repositories.StudentFilter, page, size int) ([]dto.StudentResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := s.students.GetAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving students: %w", err)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, dto.FromStudentRegistration(st))
	}

	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetByID retrieves one student registration
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}

	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudentRegistration(st)
	return &resp, nil
}

// Update edits one student row. The school and branch bindings are fixed
// at registration time and cannot be changed here.
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if validation.IsBlank(req.FirstName) {
		return nil, apperrors.NewValidationError("firstName is required")
	}
	if validation.IsBlank(req.LastName) {
		return nil, apperrors.NewValidationError("lastName is required")
	}

	birthDate, err := helpers.ParseBirthDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate must be in YYYY-MM-DD form")
	}

	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.catalog.RegistrationRequired(st.SportBranch) && validation.IsBlank(req.RegistrationNumber) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("registrationNumber is required for %s", st.SportBranch))
	}

	st.FirstName = req.FirstName
	st.LastName = req.LastName
	st.BirthDate = birthDate
	st.WeightClass = req.WeightClass
	st.RegistrationNumber = req.RegistrationNumber
	st.Notes = req.Notes

	if err := s.students.Update(ctx, st); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student updated")

	resp := dto.FromStudentRegistration(st)
	return &resp, nil
}

// Delete removes one student registration
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

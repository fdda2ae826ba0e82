package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/db"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/dberrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
	"github.com/okulsport/okulsport-backend/internal/pkg/validation"
)

// ApplicationService defines the interface for Istanbul application
// operations.
type ApplicationService interface {
	Submit(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationCreatedResponse, error)
	GetAll(ctx context.Context, page, size int) ([]dto.ApplicationResponse, dto.PaginationInfo, error)
	GetByID(ctx context.Context, id int64) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, id int64) error
}

// schoolStore is the school resolver contract the submission services
// depend on.
type schoolStore interface {
	GetOrCreateTx(ctx context.Context, tx pgx.Tx, school *models.School) (int64, error)
}

// applicationStore is the application persistence contract
type applicationStore interface {
	FindIDBySchoolTx(ctx context.Context, tx pgx.Tx, schoolID int64) (int64, bool, error)
	FindIDBySchool(ctx context.Context, schoolID int64) (int64, bool, error)
	CreateTx(ctx context.Context, tx pgx.Tx, app *models.Application) (int64, error)
	AddCategoryTx(ctx context.Context, tx pgx.Tx, cat *models.ApplicationCategory) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Application, int64, error)
	Delete(ctx context.Context, id int64) error
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	txRunner db.TxRunner
	schools  schoolStore
	apps     applicationStore
	logger   zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(txRunner db.TxRunner, schools schoolStore, apps applicationStore, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		txRunner: txRunner,
		schools:  schools,
		apps:     apps,
		logger:   logger,
	}
}

// validateSubmission checks the request shape before any store mutation.
// School name and district are trimmed in place; no other normalization
// is applied.
func (s *applicationServiceImpl) validateSubmission(req *dto.CreateApplicationRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}

	req.School.Name = strings.TrimSpace(req.School.Name)
	req.School.District = strings.TrimSpace(req.School.District)

	if req.School.Name == "" {
		return apperrors.NewValidationError("school.name is required")
	}
	if !validation.IsValidName(req.School.Name) {
		return apperrors.NewValidationError("school.name must be between 2 and 100 characters")
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
	if len(req.Categories) == 0 {
		return apperrors.NewValidationError("categories must be a non-empty list")
	}

	for i, cat := range req.Categories {
		if validation.IsBlank(cat.SportBranch) {
			return apperrors.NewValidationError(fmt.Sprintf("categories[%d].sportBranch is required", i))
		}
		if validation.IsBlank(cat.AgeCategory) {
			return apperrors.NewValidationError(fmt.Sprintf("categories[%d].ageCategory is required", i))
		}
	}

	return nil
}

// Submit runs the full submission as one atomic unit: resolve the school,
// check the one-application-per-school rule, insert the parent row, then
// the category children in input order. Any failure rolls everything back.
func (s *applicationServiceImpl) Submit(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationCreatedResponse, error) {
	if err := s.validateSubmission(req); err != nil {
		return nil, err
	}

	var (
		applicationID int64
		schoolID      int64
		raced         bool
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

		existingID, exists, err := s.apps.FindIDBySchoolTx(ctx, tx, schoolID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewApplicationExistsError(existingID)
		}

		applicationID, err = s.apps.CreateTx(ctx, tx, &models.Application{
			SchoolID:     schoolID,
			TeacherName:  req.TeacherName,
			TeacherPhone: req.TeacherPhone,
			Notes:        req.Notes,
		})
		if err != nil {
			// Two submissions can race past the guard; the unique
			// constraint turns the loser into the same conflict.
			if dberrors.IsDuplicateConstraintError(err, "applications_school_id_key") {
				raced = true
				return apperrors.ErrApplicationExists
			}
			return fmt.Errorf("error creating application: %w", err)
		}

		for i, cat := range req.Categories {
			if _, err := s.apps.AddCategoryTx(ctx, tx, &models.ApplicationCategory{
				ApplicationID: applicationID,
				SportBranch:   cat.SportBranch,
				AgeCategory:   cat.AgeCategory,
			}); err != nil {
				return fmt.Errorf("error creating category %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		if raced {
			return nil, s.conflictError(ctx, schoolID)
		}
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", applicationID).
		Int64("schoolId", schoolID).
		Str("school", req.School.Name).
		Str("district", req.School.District).
		Int("categories", len(req.Categories)).
		Msg("Application submitted")

	return &dto.ApplicationCreatedResponse{
		Message:       "Başvurunuz alındı",
		ApplicationID: applicationID,
		SchoolID:      schoolID,
	}, nil
}

// conflictError builds the conflict for a submission that lost the insert
// race, re-reading the winner's id now that the transaction is gone.
func (s *applicationServiceImpl) conflictError(ctx context.Context, schoolID int64) error {
	existingID, exists, err := s.apps.FindIDBySchool(ctx, schoolID)
	if err != nil || !exists {
		return apperrors.NewCustomError(apperrors.ErrApplicationExists, "school already has an application")
	}
	return apperrors.NewApplicationExistsError(existingID)
}

// GetAll retrieves a page of applications for the admin panel
func (s *applicationServiceImpl) GetAll(ctx context.Context, page, size int) ([]dto.ApplicationResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	applications, total, err := s.apps.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving applications: %w", err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, dto.FromApplication(app))
	}

	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetByID retrieves one application with its categories
func (s *applicationServiceImpl) GetByID(ctx context.Context, id int64) (*dto.ApplicationResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid application ID")
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromApplication(app)
	return &resp, nil
}

// Delete removes an application with its category children
func (s *applicationServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid application ID")
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationId", id).Msg("Application deleted")
	return nil
}

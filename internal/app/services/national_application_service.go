package services

import (
	"context"
	"fmt"

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

// NationalApplicationService defines the interface for national
// application operations.
type NationalApplicationService interface {
	Submit(ctx context.Context, req *dto.CreateNationalApplicationRequest) (*dto.ApplicationCreatedResponse, error)
	GetAll(ctx context.Context, page, size int) ([]dto.NationalApplicationResponse, dto.PaginationInfo, error)
	GetByID(ctx context.Context, id int64) (*dto.NationalApplicationResponse, error)
	Delete(ctx context.Context, id int64) error
}

// okulStore is the national school directory contract
type okulStore interface {
	ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
}

// nationalApplicationStore is the national application persistence contract
type nationalApplicationStore interface {
	FindIDBySchoolTx(ctx context.Context, tx pgx.Tx, schoolID int64) (int64, bool, error)
	FindIDBySchool(ctx context.Context, schoolID int64) (int64, bool, error)
	CreateTx(ctx context.Context, tx pgx.Tx, app *models.NationalApplication) (int64, error)
	AddCategoryTx(ctx context.Context, tx pgx.Tx, cat *models.NationalApplicationCategory) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.NationalApplication, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.NationalApplication, int64, error)
	Delete(ctx context.Context, id int64) error
}

// nationalApplicationServiceImpl implements the NationalApplicationService
// interface.
type nationalApplicationServiceImpl struct {
	txRunner db.TxRunner
	okullar  okulStore
	apps     nationalApplicationStore
	logger   zerolog.Logger
}

// NewNationalApplicationService creates a new national application service
// instance.
func NewNationalApplicationService(txRunner db.TxRunner, okullar okulStore, apps nationalApplicationStore, logger zerolog.Logger) NationalApplicationService {
	return &nationalApplicationServiceImpl{
		txRunner: txRunner,
		okullar:  okullar,
		apps:     apps,
		logger:   logger,
	}
}

func (s *nationalApplicationServiceImpl) validateSubmission(req *dto.CreateNationalApplicationRequest) error {
	if req == nil {
		return apperrors.NewValidationError("request body is required")
	}
	if req.SchoolID <= 0 {
		return apperrors.NewValidationError("schoolId is required")
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

// Submit creates a national application atomically. The school must exist
// in the national directory; creating schools on the fly is an Istanbul
// flow behavior only.
func (s *nationalApplicationServiceImpl) Submit(ctx context.Context, req *dto.CreateNationalApplicationRequest) (*dto.ApplicationCreatedResponse, error) {
	if err := s.validateSubmission(req); err != nil {
		return nil, err
	}

	var (
		applicationID int64
		raced         bool
	)

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := s.okullar.ExistsTx(ctx, tx, req.SchoolID)
		if err != nil {
			return fmt.Errorf("error checking school: %w", err)
		}
		if !exists {
			return apperrors.NewCustomError(apperrors.ErrOkulNotFound, fmt.Sprintf("school %d not found in national directory", req.SchoolID))
		}

		existingID, exists, err := s.apps.FindIDBySchoolTx(ctx, tx, req.SchoolID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewApplicationExistsError(existingID)
		}

		applicationID, err = s.apps.CreateTx(ctx, tx, &models.NationalApplication{
			SchoolID:     req.SchoolID,
			TeacherName:  req.TeacherName,
			TeacherPhone: req.TeacherPhone,
			Notes:        req.Notes,
		})
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "national_applications_school_id_key") {
				raced = true
				return apperrors.ErrApplicationExists
			}
			return fmt.Errorf("error creating national application: %w", err)
		}

		for i, cat := range req.Categories {
			if _, err := s.apps.AddCategoryTx(ctx, tx, &models.NationalApplicationCategory{
				NationalApplicationID: applicationID,
				SportBranch:           cat.SportBranch,
				AgeCategory:           cat.AgeCategory,
			}); err != nil {
				return fmt.Errorf("error creating category %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		if raced {
			return nil, s.conflictError(ctx, req.SchoolID)
		}
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", applicationID).
		Int64("schoolId", req.SchoolID).
		Int("categories", len(req.Categories)).
		Msg("National application submitted")

	return &dto.ApplicationCreatedResponse{
		Message:       "Başvurunuz alındı",
		ApplicationID: applicationID,
		SchoolID:      req.SchoolID,
	}, nil
}

// conflictError builds the conflict for a submission that lost the insert
// race, re-reading the winner's id now that the transaction is gone.
func (s *nationalApplicationServiceImpl) conflictError(ctx context.Context, schoolID int64) error {
	existingID, exists, err := s.apps.FindIDBySchool(ctx, schoolID)
	if err != nil || !exists {
		return apperrors.NewCustomError(apperrors.ErrApplicationExists, "school already has an application")
	}
	return apperrors.NewApplicationExistsError(existingID)
}

// GetAll retrieves a page of national applications for the admin panel
func (s *nationalApplicationServiceImpl) GetAll(ctx context.Context, page, size int) ([]dto.NationalApplicationResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	applications, total, err := s.apps.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving national applications: %w", err)
	}

	responses := make([]dto.NationalApplicationResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, dto.FromNationalApplication(app))
	}

	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetByID retrieves one national application with its categories
func (s *nationalApplicationServiceImpl) GetByID(ctx context.Context, id int64) (*dto.NationalApplicationResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid application ID")
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromNationalApplication(app)
	return &resp, nil
}

// Delete removes a national application with its category children
func (s *nationalApplicationServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid application ID")
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationId", id).Msg("National application deleted")
	return nil
}

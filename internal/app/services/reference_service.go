package services

import (
	"context"
	"fmt"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/reference"
)

// ReferenceService serves the read-only reference data behind the public
// form selectors: the branch catalog, the Istanbul school directory and
// the national school directory.
type ReferenceService interface {
	GetBranches(ctx context.Context) []dto.BranchResponse
	GetDistricts(ctx context.Context, side string) ([]string, error)
	GetDistrictSchools(ctx context.Context, district string) (*dto.DistrictSchoolsResponse, error)
	SearchOkullar(ctx context.Context, query, city string) ([]*models.Okul, error)
	GetSchools(ctx context.Context) ([]dto.SchoolResponse, error)
	GetSchool(ctx context.Context, id int64) (*dto.SchoolResponse, error)
}

// registeredSchoolStore is the Istanbul school directory contract
type registeredSchoolStore interface {
	Districts(ctx context.Context, side models.Side) ([]string, error)
	SchoolNames(ctx context.Context, district string) ([]string, error)
}

// okulSearchStore is the national school directory search contract
type okulSearchStore interface {
	Search(ctx context.Context, query, city string, limit int) ([]*models.Okul, error)
}

// schoolDirectoryStore reads the schools created by submissions
type schoolDirectoryStore interface {
	GetAll(ctx context.Context) ([]*models.School, error)
	GetByID(ctx context.Context, id int64) (*models.School, error)
}

// okulSearchLimit caps the typeahead result size
const okulSearchLimit = 50

// referenceServiceImpl implements the ReferenceService interface
type referenceServiceImpl struct {
	catalog   *reference.Catalog
	directory registeredSchoolStore
	okullar   okulSearchStore
	schools   schoolDirectoryStore
}

// NewReferenceService creates a new reference service instance
func NewReferenceService(catalog *reference.Catalog, directory registeredSchoolStore, okullar okulSearchStore, schools schoolDirectoryStore) ReferenceService {
	return &referenceServiceImpl{
		catalog:   catalog,
		directory: directory,
		okullar:   okullar,
		schools:   schools,
	}
}

// GetBranches returns the full branch catalog
func (s *referenceServiceImpl) GetBranches(_ context.Context) []dto.BranchResponse {
	branches := make([]dto.BranchResponse, 0, len(s.catalog.Branches))
	for _, branch := range s.catalog.Branches {
		resp := dto.BranchResponse{
			Name:                 branch.Name,
			RegistrationRequired: branch.RegistrationRequired,
		}
		for _, cat := range branch.Categories {
			resp.Categories = append(resp.Categories, dto.AgeCategoryResponse{
				Name:          cat.Name,
				WeightClasses: cat.WeightClasses,
			})
		}
		branches = append(branches, resp)
	}
	return branches
}

// GetDistricts lists the directory districts of one side of the city
func (s *referenceServiceImpl) GetDistricts(ctx context.Context, side string) ([]string, error) {
	if !models.ValidSide(side) {
		return nil, apperrors.NewValidationError("side must be Anadolu or Avrupa")
	}
	return s.directory.Districts(ctx, models.Side(side))
}

// GetDistrictSchools lists the directory school names of one district
func (s *referenceServiceImpl) GetDistrictSchools(ctx context.Context, district string) (*dto.DistrictSchoolsResponse, error) {
	if district == "" {
		return nil, apperrors.NewValidationError("district is required")
	}

	schools, err := s.directory.SchoolNames(ctx, district)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no directory schools in district %s", district))
	}

	return &dto.DistrictSchoolsResponse{
		District: district,
		Schools:  schools,
	}, nil
}

// SearchOkullar searches the national school directory by name prefix,
// optionally narrowed to a city.
func (s *referenceServiceImpl) SearchOkullar(ctx context.Context, query, city string) ([]*models.Okul, error) {
	if len([]rune(query)) < 2 {
		return nil, apperrors.NewValidationError("q must be at least 2 characters")
	}
	return s.okullar.Search(ctx, query, city, okulSearchLimit)
}

// GetSchools lists every school resolved through the submission flows,
// ordered by district and name.
func (s *referenceServiceImpl) GetSchools(ctx context.Context) ([]dto.SchoolResponse, error) {
	schools, err := s.schools.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}

	responses := make([]dto.SchoolResponse, 0, len(schools))
	for _, school := range schools {
		responses = append(responses, dto.FromSchool(school))
	}
	return responses, nil
}

// GetSchool retrieves one resolved school
func (s *referenceServiceImpl) GetSchool(ctx context.Context, id int64) (*dto.SchoolResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid school ID")
	}

	school, err := s.schools.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromSchool(school)
	return &resp, nil
}

// Package services contains the business rules between the HTTP
// controllers and the repositories: request validation, the transactional
// submission write paths and token issuing. Services depend on small
// store interfaces rather than the concrete repositories so the write
// paths stay testable without a database.
package services

import (
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/db"
	"github.com/okulsport/okulsport-backend/internal/pkg/auth"
	"github.com/okulsport/okulsport-backend/internal/reference"
)

// Services holds all the service instances
type Services struct {
	ApplicationService         ApplicationService
	NationalApplicationService NationalApplicationService
	StudentService             StudentService
	PostService                PostService
	AuthService                AuthService
	ReferenceService           ReferenceService
}

// NewServices initializes all services
func NewServices(
	database *db.PostgresDB,
	repos *repositories.Repositories,
	catalog *reference.Catalog,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *Services {
	return &Services{
		ApplicationService: NewApplicationService(
			database, repos.SchoolRepository, repos.ApplicationRepository, logger),
		NationalApplicationService: NewNationalApplicationService(
			database, repos.OkulRepository, repos.NationalApplicationRepository, logger),
		StudentService: NewStudentService(
			database, repos.SchoolRepository, repos.StudentRepository, catalog, logger),
		PostService: NewPostService(
			database, repos.PostRepository, logger),
		AuthService: NewAuthService(
			repos.AdminRepository, jwtService, logger),
		ReferenceService: NewReferenceService(
			catalog, repos.RegisteredSchoolRepository, repos.OkulRepository, repos.SchoolRepository),
	}
}

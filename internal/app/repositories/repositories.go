package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository              *SchoolRepository
	ApplicationRepository         *ApplicationRepository
	NationalApplicationRepository *NationalApplicationRepository
	OkulRepository                *OkulRepository
	StudentRepository             *StudentRepository
	RegisteredSchoolRepository    *RegisteredSchoolRepository
	PostRepository                *PostRepository
	AdminRepository               *AdminRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:              NewSchoolRepository(db),
		ApplicationRepository:         NewApplicationRepository(db),
		NationalApplicationRepository: NewNationalApplicationRepository(db),
		OkulRepository:                NewOkulRepository(db),
		StudentRepository:             NewStudentRepository(db),
		RegisteredSchoolRepository:    NewRegisteredSchoolRepository(db),
		PostRepository:                NewPostRepository(db),
		AdminRepository:               NewAdminRepository(db),
	}
}

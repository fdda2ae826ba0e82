package dto

import (
	"time"

	"github.com/okulsport/okulsport-backend/internal/app/models"
)

// SchoolIdentity carries the (name, district) pair that identifies a
// school, plus the side/type attributes used when the school does not
// exist yet.
type SchoolIdentity struct {
	Name     string `json:"name" binding:"required" example:"Kadıköy Anadolu Lisesi"`
	District string `json:"district" binding:"required" example:"Kadıköy"`
	Side     string `json:"side" binding:"required" example:"Anadolu" enums:"Anadolu,Avrupa"`
	Type     string `json:"type" binding:"required" example:"Lise" enums:"Orta,Lise"`
}

// CategoryItem is one (sport branch, age category) entry of an application
type CategoryItem struct {
	SportBranch string `json:"sportBranch" binding:"required" example:"Satranç"`
	AgeCategory string `json:"ageCategory" binding:"required" example:"Yıldız Kız"`
}

// CreateApplicationRequest is the Istanbul application submission payload
type CreateApplicationRequest struct {
	School       SchoolIdentity `json:"school" binding:"required"`
	TeacherName  string         `json:"teacherName" binding:"required" example:"Ayşe Yılmaz"`
	TeacherPhone string         `json:"teacherPhone" binding:"required" example:"05551112233"`
	Notes        string         `json:"notes"`
	Categories   []CategoryItem `json:"categories" binding:"required"`
}

// ApplicationCreatedResponse is returned after a successful submission
type ApplicationCreatedResponse struct {
	Message       string `json:"message" example:"Başvurunuz alındı"`
	ApplicationID int64  `json:"applicationId" example:"12"`
	SchoolID      int64  `json:"schoolId" example:"3"`
}

// SchoolResponse is the admin-facing view of one resolved school
type SchoolResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Side      string    `json:"side"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromSchool converts a models.School to a SchoolResponse
func FromSchool(school *models.School) SchoolResponse {
	if school == nil {
		return SchoolResponse{}
	}
	return SchoolResponse{
		ID:        school.ID,
		Name:      school.Name,
		District:  school.District,
		Side:      string(school.Side),
		Type:      string(school.Type),
		CreatedAt: school.CreatedAt,
	}
}

// ApplicationResponse is the admin-facing view of one application
type ApplicationResponse struct {
	ID           int64          `json:"id"`
	SchoolID     int64          `json:"schoolId"`
	SchoolName   string         `json:"schoolName,omitempty"`
	District     string         `json:"district,omitempty"`
	Side         string         `json:"side,omitempty"`
	SchoolType   string         `json:"schoolType,omitempty"`
	TeacherName  string         `json:"teacherName"`
	TeacherPhone string         `json:"teacherPhone"`
	Notes        string         `json:"notes,omitempty"`
	Categories   []CategoryItem `json:"categories,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FromApplication converts a models.Application to an ApplicationResponse
func FromApplication(app *models.Application) ApplicationResponse {
	if app == nil {
		return ApplicationResponse{}
	}

	resp := ApplicationResponse{
		ID:           app.ID,
		SchoolID:     app.SchoolID,
		TeacherName:  app.TeacherName,
		TeacherPhone: app.TeacherPhone,
		Notes:        app.Notes,
		CreatedAt:    app.CreatedAt,
	}

	if app.School != nil {
		resp.SchoolName = app.School.Name
		resp.District = app.School.District
		resp.Side = string(app.School.Side)
		resp.SchoolType = string(app.School.Type)
	}

	for _, cat := range app.Categories {
		resp.Categories = append(resp.Categories, CategoryItem{
			SportBranch: cat.SportBranch,
			AgeCategory: cat.AgeCategory,
		})
	}

	return resp
}

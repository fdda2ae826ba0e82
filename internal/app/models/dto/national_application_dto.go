package dto

import (
	"time"

	"github.com/okulsport/okulsport-backend/internal/app/models"
)

// CreateNationalApplicationRequest is the national application submission
// payload. The school is referenced by its national directory id.
type CreateNationalApplicationRequest struct {
	SchoolID     int64          `json:"schoolId" binding:"required" example:"42"`
	TeacherName  string         `json:"teacherName" binding:"required"`
	TeacherPhone string         `json:"teacherPhone" binding:"required"`
	Notes        string         `json:"notes"`
	Categories   []CategoryItem `json:"categories" binding:"required"`
}

// NationalApplicationResponse is the admin-facing view of one national
// application.
type NationalApplicationResponse struct {
	ID           int64          `json:"id"`
	SchoolID     int64          `json:"schoolId"`
	SchoolName   string         `json:"schoolName,omitempty"`
	City         string         `json:"city,omitempty"`
	District     string         `json:"district,omitempty"`
	TeacherName  string         `json:"teacherName"`
	TeacherPhone string         `json:"teacherPhone"`
	Notes        string         `json:"notes,omitempty"`
	Categories   []CategoryItem `json:"categories,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FromNationalApplication converts a models.NationalApplication to its
// response DTO.
func FromNationalApplication(app *models.NationalApplication) NationalApplicationResponse {
	if app == nil {
		return NationalApplicationResponse{}
	}

	resp := NationalApplicationResponse{
		ID:           app.ID,
		SchoolID:     app.SchoolID,
		TeacherName:  app.TeacherName,
		TeacherPhone: app.TeacherPhone,
		Notes:        app.Notes,
		CreatedAt:    app.CreatedAt,
	}

	if app.Okul != nil {
		resp.SchoolName = app.Okul.Name
		resp.City = app.Okul.City
		resp.District = app.Okul.District
	}

	for _, cat := range app.Categories {
		resp.Categories = append(resp.Categories, CategoryItem{
			SportBranch: cat.SportBranch,
			AgeCategory: cat.AgeCategory,
		})
	}

	return resp
}

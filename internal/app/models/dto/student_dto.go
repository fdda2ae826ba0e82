package dto

import (
	"time"

	"github.com/okulsport/okulsport-backend/internal/app/models"
)

// StudentItem is one student entry of a registration submission.
// BirthDate is expected in "2006-01-02" form.
type StudentItem struct {
	FirstName          string `json:"firstName" binding:"required" example:"Mehmet"`
	LastName           string `json:"lastName" binding:"required" example:"Demir"`
	BirthDate          string `json:"birthDate" binding:"required" example:"2011-03-17"`
	AgeCategory        string `json:"ageCategory" example:"Yıldız Erkek"`
	WeightClass        string `json:"weightClass" example:"52 kg"`
	RegistrationNumber string `json:"registrationNumber" example:"TKD-10382"`
}

// CreateStudentRegistrationRequest is the student registration submission
// payload. One request registers N students of one school for one branch.
type CreateStudentRegistrationRequest struct {
	School       SchoolIdentity `json:"school" binding:"required"`
	SportBranch  string         `json:"sportBranch" binding:"required" example:"Güreş"`
	TeacherName  string         `json:"teacherName" binding:"required"`
	TeacherPhone string         `json:"teacherPhone" binding:"required"`
	Notes        string         `json:"notes"`
	Students     []StudentItem  `json:"students" binding:"required"`
}

// CreatedStudent identifies one student row created by a registration
type CreatedStudent struct {
	ID        int64  `json:"id" example:"7"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StudentRegistrationCreatedResponse is returned after a successful
// registration submission.
type StudentRegistrationCreatedResponse struct {
	Message  string           `json:"message" example:"Kayıt alındı"`
	SchoolID int64            `json:"schoolId" example:"3"`
	Students []CreatedStudent `json:"students"`
}

// UpdateStudentRequest is the admin edit payload. School and branch are
// deliberately absent: a student row never moves between schools or
// branches.
type UpdateStudentRequest struct {
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	BirthDate          string `json:"birthDate" binding:"required" example:"2011-03-17"`
	WeightClass        string `json:"weightClass"`
	RegistrationNumber string `json:"registrationNumber"`
	Notes              string `json:"notes"`
}

// StudentResponse is the admin-facing view of one student registration
type StudentResponse struct {
	ID                 int64     `json:"id"`
	SchoolID           int64     `json:"schoolId"`
	SchoolName         string    `json:"schoolName,omitempty"`
	District           string    `json:"district,omitempty"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	BirthDate          string    `json:"birthDate"`
	SportBranch        string    `json:"sportBranch"`
	AgeCategory        string    `json:"ageCategory,omitempty"`
	WeightClass        string    `json:"weightClass,omitempty"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	TeacherName        string    `json:"teacherName"`
	TeacherPhone       string    `json:"teacherPhone"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FromStudentRegistration converts a models.StudentRegistration to its
// response DTO.
func FromStudentRegistration(st *models.StudentRegistration) StudentResponse {
	if st == nil {
		return StudentResponse{}
	}

	resp := StudentResponse{
		ID:                 st.ID,
		SchoolID:           st.SchoolID,
		FirstName:          st.FirstName,
		LastName:           st.LastName,
		BirthDate:          st.BirthDate.Format("2006-01-02"),
		SportBranch:        st.SportBranch,
		AgeCategory:        st.AgeCategory,
		WeightClass:        st.WeightClass,
		RegistrationNumber: st.RegistrationNumber,
		TeacherName:        st.TeacherName,
		TeacherPhone:       st.TeacherPhone,
		Notes:              st.Notes,
		CreatedAt:          st.CreatedAt,
	}

	if st.School != nil {
		resp.SchoolName = st.School.Name
		resp.District = st.School.District
	}

	return resp
}

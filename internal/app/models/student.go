package models

import "time"

// StudentRegistration defines one student's participation in one sport
// branch, based on the 'students' table. There is no uniqueness guard:
// a school may submit any number of students over any number of requests.
type StudentRegistration struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	SchoolID           int64     `json:"schoolId" db:"school_id" example:"3"`
	FirstName          string    `json:"firstName" db:"first_name" example:"Mehmet"`
	LastName           string    `json:"lastName" db:"last_name" example:"Demir"`
	BirthDate          time.Time `json:"birthDate" db:"birth_date"`
	SportBranch        string    `json:"sportBranch" db:"sport_branch" example:"Güreş"`
	AgeCategory        string    `json:"ageCategory,omitempty" db:"age_category" example:"Yıldız Erkek"`
	WeightClass        string    `json:"weightClass,omitempty" db:"weight_class" example:"52 kg"`
	RegistrationNumber string    `json:"registrationNumber,omitempty" db:"registration_number"`
	TeacherName        string    `json:"teacherName" db:"teacher_name"`
	TeacherPhone       string    `json:"teacherPhone" db:"teacher_phone"`
	Notes              string    `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated when needed)
	School *School `json:"school,omitempty"`
}

// RegisteredSchool is one entry of the pre-imported Istanbul school
// directory used by the public form selectors. Submitted school names are
// not validated against this directory.
type RegisteredSchool struct {
	ID       int64  `json:"id" db:"id"`
	Side     Side   `json:"side" db:"side"`
	District string `json:"district" db:"district"`
	Name     string `json:"name" db:"name"`
}

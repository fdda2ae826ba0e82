package models

import "time"

// Application defines the Istanbul tournament application model based on
// the 'applications' table. At most one application may exist per school.
type Application struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	SchoolID     int64     `json:"schoolId" db:"school_id" example:"3"`
	TeacherName  string    `json:"teacherName" db:"teacher_name" example:"Ayşe Yılmaz"`
	TeacherPhone string    `json:"teacherPhone" db:"teacher_phone" example:"05551112233"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	School     *School               `json:"school,omitempty"`
	Categories []ApplicationCategory `json:"categories,omitempty"`
}

// ApplicationCategory is a (sport branch, age category) pair submitted with
// an application. Rows are owned by their application and cascade on delete.
type ApplicationCategory struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	ApplicationID int64  `json:"applicationId" db:"application_id" example:"1"`
	SportBranch   string `json:"sportBranch" db:"sport_branch" example:"Satranç"`
	AgeCategory   string `json:"ageCategory" db:"age_category" example:"Yıldız Kız"`
}

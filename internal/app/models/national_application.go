package models

import "time"

// NationalApplication defines the national tournament application model.
// It references the pre-seeded national school directory ('okullar') by id
// rather than the lazily created schools table. Same one-per-school rule
// as Application.
type NationalApplication struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	SchoolID     int64     `json:"schoolId" db:"school_id" example:"42"`
	TeacherName  string    `json:"teacherName" db:"teacher_name"`
	TeacherPhone string    `json:"teacherPhone" db:"teacher_phone"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Okul       *Okul                         `json:"school,omitempty"`
	Categories []NationalApplicationCategory `json:"categories,omitempty"`
}

// NationalApplicationCategory is the category child row of a national
// application.
type NationalApplicationCategory struct {
	ID                    int64  `json:"id" db:"id"`
	NationalApplicationID int64  `json:"nationalApplicationId" db:"national_application_id"`
	SportBranch           string `json:"sportBranch" db:"sport_branch"`
	AgeCategory           string `json:"ageCategory" db:"age_category"`
}

// Okul is one entry of the national school directory.
type Okul struct {
	ID       int64  `json:"id" db:"id" example:"42"`
	Name     string `json:"name" db:"name" example:"Ankara Atatürk Lisesi"`
	City     string `json:"city" db:"city" example:"Ankara"`
	District string `json:"district" db:"district" example:"Çankaya"`
}

package models

import "time"

// Admin defines the admin account model based on the 'admins' table.
// Admins manage applications, students and posts through the panel API.
type Admin struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"admin@okulsport.app"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name" example:"Admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

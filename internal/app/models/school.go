package models

import "time"

// School defines the school model based on the 'schools' table.
// A school is identified by its (name, district) pair; rows are created
// lazily on first submission and are never updated or deleted here.
type School struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	Name      string     `json:"name" db:"name" example:"Kadıköy Anadolu Lisesi"`
	District  string     `json:"district" db:"district" example:"Kadıköy"`
	Side      Side       `json:"side" db:"side" example:"Anadolu"`
	Type      SchoolType `json:"type" db:"type" example:"Lise"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

package models

import "time"

// Post defines the blog/news post model based on the 'posts' table.
type Post struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Title      string    `json:"title" db:"title" example:"2026 Satranç Sonuçları"`
	Slug       string    `json:"slug" db:"slug" example:"2026-satranc-sonuclari"`
	Summary    string    `json:"summary,omitempty" db:"summary"`
	Content    string    `json:"content" db:"content"`
	CategoryID int64     `json:"categoryId,omitempty" db:"category_id"`
	Published  bool      `json:"published" db:"published"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Category *PostCategory `json:"category,omitempty"`
	Tags     []Tag         `json:"tags,omitempty"`
}

// PostCategory groups posts on the public site (news, results, galleries).
type PostCategory struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Sonuçlar"`
	Slug string `json:"slug" db:"slug" example:"sonuclar"`
}

// Tag is a free-form label attached to posts.
type Tag struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"satranç"`
	Slug string `json:"slug" db:"slug" example:"satranc"`
}

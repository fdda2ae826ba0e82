package dto

import (
	"time"

	"github.com/okulsport/okulsport-backend/internal/app/models"
)

// CreatePostRequest is the admin payload for creating a post. The slug is
// derived from the title server-side.
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required" example:"2026 Satranç Sonuçları"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content" binding:"required"`
	CategoryID int64    `json:"categoryId"`
	Published  bool     `json:"published"`
	Tags       []string `json:"tags"`
}

// UpdatePostRequest is the admin payload for updating a post
type UpdatePostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content" binding:"required"`
	CategoryID int64    `json:"categoryId"`
	Published  bool     `json:"published"`
	Tags       []string `json:"tags"`
}

// CreatePostCategoryRequest is the admin payload for a post category
type CreatePostCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Sonuçlar"`
}

// PostResponse is the public/admin view of one post
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"`
	Category  string    `json:"category,omitempty"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromPost converts a models.Post to a PostResponse. When withContent is
// false the body is left out (list views).
func FromPost(post *models.Post, withContent bool) PostResponse {
	if post == nil {
		return PostResponse{}
	}

	resp := PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Summary:   post.Summary,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if withContent {
		resp.Content = post.Content
	}

	if post.Category != nil {
		resp.Category = post.Category.Name
	}

	for _, tag := range post.Tags {
		resp.Tags = append(resp.Tags, tag.Name)
	}

	return resp
}

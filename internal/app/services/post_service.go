package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/db"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
	"github.com/okulsport/okulsport-backend/internal/pkg/validation"
)

// PostService defines the interface for blog/content operations
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PostResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.PostResponse, error)
	GetAll(ctx context.Context, filter repositories.PostFilter, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error)
	SetPublished(ctx context.Context, id int64, published bool) error
	Delete(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, req *dto.CreatePostCategoryRequest) (*models.PostCategory, error)
	GetCategories(ctx context.Context) ([]*models.PostCategory, error)
}

// postStore is the post persistence contract
type postStore interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateTx(ctx context.Context, tx pgx.Tx, post *models.Post) (int64, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, post *models.Post) error
	GetOrCreateTagTx(ctx context.Context, tx pgx.Tx, name, slug string) (int64, error)
	ReplaceTagsTx(ctx context.Context, tx pgx.Tx, postID int64, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetAll(ctx context.Context, filter repositories.PostFilter, offset uint64, limit int) ([]*models.Post, int64, error)
	SetPublished(ctx context.Context, id int64, published bool) error
	Delete(ctx context.Context, id int64) error
	CategoryExists(ctx context.Context, id int64) (bool, error)
	CreateCategory(ctx context.Context, category *models.PostCategory) (int64, error)
	GetCategories(ctx context.Context) ([]*models.PostCategory, error)
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	txRunner db.TxRunner
	posts    postStore
	logger   zerolog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(txRunner db.TxRunner, posts postStore, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		txRunner: txRunner,
		posts:    posts,
		logger:   logger,
	}
}

// resolveSlug derives a unique slug from the title, suffixing -2, -3 and
// so on while the base form is taken.
func (s *postServiceImpl) resolveSlug(ctx context.Context, title string) (string, error) {
	base := helpers.Slugify(title)
	if base == "" {
		return "", apperrors.NewValidationError("title must contain at least one letter or digit")
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.posts.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Create inserts a post with its tag links as one transaction
func (s *postServiceImpl) Create(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if validation.IsBlank(req.Title) {
		return nil, apperrors.NewValidationError("title is required")
	}
	if validation.IsBlank(req.Content) {
		return nil, apperrors.NewValidationError("content is required")
	}

	if req.CategoryID > 0 {
		exists, err := s.posts.CategoryExists(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewCustomError(apperrors.ErrPostCategoryNotFound, fmt.Sprintf("post category %d not found", req.CategoryID))
		}
	}

	slug, err := s.resolveSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	var postID int64

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		postID, err = s.posts.CreateTx(ctx, tx, &models.Post{
			Title:      req.Title,
			Slug:       slug,
			Summary:    req.Summary,
			Content:    req.Content,
			CategoryID: req.CategoryID,
			Published:  req.Published,
		})
		if err != nil {
			return fmt.Errorf("error creating post: %w", err)
		}

		return s.linkTags(ctx, tx, postID, req.Tags)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", postID).Str("slug", slug).Msg("Post created")

	return s.GetByID(ctx, postID)
}

// linkTags resolves tag names and rewrites the post's tag links
func (s *postServiceImpl) linkTags(ctx context.Context, tx pgx.Tx, postID int64, tags []string) error {
	tagIDs := make([]int64, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, name := range tags {
		if validation.IsBlank(name) {
			continue
		}
		tagSlug := helpers.Slugify(name)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		id, err := s.posts.GetOrCreateTagTx(ctx, tx, name, tagSlug)
		if err != nil {
			return err
		}
		tagIDs = append(tagIDs, id)
	}

	return s.posts.ReplaceTagsTx(ctx, tx, postID, tagIDs)
}

// Update edits a post and its tag links as one transaction. The slug is
// stable: renaming the title does not break published URLs.
func (s *postServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid post ID")
	}
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if validation.IsBlank(req.Title) {
		return nil, apperrors.NewValidationError("title is required")
	}
	if validation.IsBlank(req.Content) {
		return nil, apperrors.NewValidationError("content is required")
	}

	if req.CategoryID > 0 {
		exists, err := s.posts.CategoryExists(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewCustomError(apperrors.ErrPostCategoryNotFound, fmt.Sprintf("post category %d not found", req.CategoryID))
		}
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Summary = req.Summary
	post.Content = req.Content
	post.CategoryID = req.CategoryID
	post.Published = req.Published

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.posts.UpdateTx(ctx, tx, post); err != nil {
			return err
		}
		return s.linkTags(ctx, tx, id, req.Tags)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", id).Msg("Post updated")

	return s.GetByID(ctx, id)
}

// GetByID retrieves one post regardless of publication state
func (s *postServiceImpl) GetByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid post ID")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromPost(post, true)
	return &resp, nil
}

// GetBySlug retrieves one published post for the public site
func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.PostResponse, error) {
	if validation.IsBlank(slug) {
		return nil, apperrors.NewValidationError("slug is required")
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := dto.FromPost(post, true)
	return &resp, nil
}

// GetAll retrieves a page of posts, list view without bodies
func (s *postServiceImpl) GetAll(ctx context.Context, filter repositories.PostFilter, page, size int) ([]dto.PostResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	posts, total, err := s.posts.GetAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving posts: %w", err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.FromPost(post, false))
	}

	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// SetPublished toggles a post's publication state
func (s *postServiceImpl) SetPublished(ctx context.Context, id int64, published bool) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid post ID")
	}

	if err := s.posts.SetPublished(ctx, id, published); err != nil {
		return err
	}

	s.logger.Info().Int64("postId", id).Bool("published", published).Msg("Post publication state changed")
	return nil
}

// Delete removes a post with its tag links
func (s *postServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid post ID")
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("postId", id).Msg("Post deleted")
	return nil
}

// CreateCategory adds a post category
func (s *postServiceImpl) CreateCategory(ctx context.Context, req *dto.CreatePostCategoryRequest) (*models.PostCategory, error) {
	if req == nil || validation.IsBlank(req.Name) {
		return nil, apperrors.NewValidationError("name is required")
	}

	category := &models.PostCategory{
		Name: req.Name,
		Slug: helpers.Slugify(req.Name),
	}

	id, err := s.posts.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id

	s.logger.Info().Int64("categoryId", id).Str("name", req.Name).Msg("Post category created")
	return category, nil
}

// GetCategories lists all post categories
func (s *postServiceImpl) GetCategories(ctx context.Context) ([]*models.PostCategory, error) {
	return s.posts.GetCategories(ctx)
}

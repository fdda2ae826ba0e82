package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// PostRepository handles database operations for posts, tags and post
// categories.
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

// SlugExists checks whether a post slug is already taken
func (r *PostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking slug: %w", err)
	}
	return exists, nil
}

// CreateTx inserts a post inside the caller's transaction
func (r *PostRepository) CreateTx(ctx context.Context, tx pgx.Tx, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (title, slug, summary, content, category_id, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		post.Title, post.Slug,
		helpers.GetContentNullString(post.Summary),
		post.Content,
		helpers.GetNullInt64(post.CategoryID),
		post.Published).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateTx edits a post inside the caller's transaction
func (r *PostRepository) UpdateTx(ctx context.Context, tx pgx.Tx, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, summary = $2, content = $3, category_id = $4,
		    published = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	cmdTag, err := tx.Exec(ctx, query,
		post.Title,
		helpers.GetContentNullString(post.Summary),
		post.Content,
		helpers.GetNullInt64(post.CategoryID),
		post.Published,
		post.ID)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// GetOrCreateTagTx resolves a tag by slug inside the caller's transaction,
// creating it on first use.
func (r *PostRepository) GetOrCreateTagTx(ctx context.Context, tx pgx.Tx, name, slug string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM tags WHERE slug = $1`, slug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error resolving tag: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO tags (name, slug)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT tags_slug_key DO NOTHING
		RETURNING id`, name, slug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error creating tag: %w", err)
	}

	err = tx.QueryRow(ctx, `SELECT id FROM tags WHERE slug = $1`, slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error re-resolving tag after conflict: %w", err)
	}

	return id, nil
}

// ReplaceTagsTx rewrites a post's tag links inside the caller's transaction
func (r *PostRepository) ReplaceTagsTx(ctx context.Context, tx pgx.Tx, postID int64, tagIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("error clearing post tags: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, tagID); err != nil {
			return fmt.Errorf("error linking post tag: %w", err)
		}
	}

	return nil
}

// GetByID retrieves a post regardless of publication state
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return r.getOne(ctx, `p.id = $1`, id)
}

// GetBySlug retrieves a published post by slug
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.getOne(ctx, `p.slug = $1 AND p.published`, slug)
}

func (r *PostRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Post, error) {
	query := `
		SELECT p.id, p.title, p.slug, COALESCE(p.summary, ''), p.content,
		       COALESCE(p.category_id, 0), p.published, p.created_at, p.updated_at,
		       COALESCE(c.name, ''), COALESCE(c.slug, '')
		FROM posts p
		LEFT JOIN post_categories c ON c.id = p.category_id
		WHERE ` + where

	var (
		post         models.Post
		categoryName string
		categorySlug string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Summary,
		&post.Content,
		&post.CategoryID,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
		&categoryName,
		&categorySlug,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}

	if post.CategoryID != 0 {
		post.Category = &models.PostCategory{ID: post.CategoryID, Name: categoryName, Slug: categorySlug}
	}

	tags, err := r.getTags(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	return &post, nil
}

func (r *PostRepository) getTags(ctx context.Context, postID int64) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.slug
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

// PostFilter narrows post listings
type PostFilter struct {
	PublishedOnly bool
	CategorySlug  string
}

// GetAll retrieves a page of posts, newest first
func (r *PostRepository) GetAll(ctx context.Context, filter PostFilter, offset uint64, limit int) ([]*models.Post, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM posts p
		LEFT JOIN post_categories c ON c.id = p.category_id
		WHERE (NOT $1 OR p.published)
		  AND ($2 = '' OR c.slug = $2)
	`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.PublishedOnly, filter.CategorySlug).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	query := `
		SELECT p.id, p.title, p.slug, COALESCE(p.summary, ''),
		       COALESCE(p.category_id, 0), p.published, p.created_at, p.updated_at,
		       COALESCE(c.name, '')
		FROM posts p
		LEFT JOIN post_categories c ON c.id = p.category_id
		WHERE (NOT $1 OR p.published)
		  AND ($2 = '' OR c.slug = $2)
		ORDER BY p.created_at DESC, p.id DESC
		OFFSET $3 LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, filter.PublishedOnly, filter.CategorySlug, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var (
			post         models.Post
			categoryName string
		)
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Summary,
			&post.CategoryID,
			&post.Published,
			&post.CreatedAt,
			&post.UpdatedAt,
			&categoryName,
		); err != nil {
			return nil, 0, err
		}
		if post.CategoryID != 0 {
			post.Category = &models.PostCategory{ID: post.CategoryID, Name: categoryName}
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// SetPublished toggles publication
func (r *PostRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE posts SET published = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		published, id)
	if err != nil {
		return fmt.Errorf("error updating post publication: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete removes a post; tag links cascade
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// CategoryExists checks a post category id
func (r *PostRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM post_categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking post category: %w", err)
	}
	return exists, nil
}

// CreateCategory inserts a post category
func (r *PostRepository) CreateCategory(ctx context.Context, category *models.PostCategory) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO post_categories (name, slug) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Slug).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCategories lists all post categories
func (r *PostRepository) GetCategories(ctx context.Context) ([]*models.PostCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug FROM post_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.PostCategory
	for rows.Next() {
		var category models.PostCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

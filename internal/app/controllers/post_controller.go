package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/middleware"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// PostController handles blog/content operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// GetPublished lists published posts for the public site
// @Summary List published posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Param category query string false "Filter by category slug"
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetPublished(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := repositories.PostFilter{
		PublishedOnly: true,
		CategorySlug:  ctx.Query("category"),
	}

	posts, pagination, err := c.postService.GetAll(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       posts,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetBySlug retrieves one published post
// @Summary Get a published post
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{slug} [get]
func (c *PostController) GetBySlug(ctx *gin.Context) {
	post, err := c.postService.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// GetAll lists all posts for the admin panel, drafts included
// @Summary List all posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts [get]
func (c *PostController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	posts, pagination, err := c.postService.GetAll(ctx.Request.Context(), repositories.PostFilter{}, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       posts,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetByID retrieves one post regardless of publication state
// @Summary Get post details
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/{id} [get]
func (c *PostController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.postService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// Create adds a post
// @Summary Create a post
// @Description Creates a post with a slug derived from its title and optional tags
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post payload"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post category not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// Update edits a post
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.UpdatePostRequest true "Post payload"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/{id} [put]
func (c *PostController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.postService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// Publish marks a post as published
// @Summary Publish a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post published"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/{id}/publish [post]
func (c *PostController) Publish(ctx *gin.Context) {
	c.setPublished(ctx, true, "Post published")
}

// Unpublish returns a post to draft state
// @Summary Unpublish a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post unpublished"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/{id}/unpublish [post]
func (c *PostController) Unpublish(ctx *gin.Context) {
	c.setPublished(ctx, false, "Post unpublished")
}

func (c *PostController) setPublished(ctx *gin.Context, published bool, message string) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.postService.SetPublished(ctx.Request.Context(), id, published); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: message},
		Timestamp: time.Now(),
	})
}

// Delete removes a post
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.postService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Post deleted"},
		Timestamp: time.Now(),
	})
}

// GetCategories lists post categories
// @Summary List post categories
// @Tags posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.PostCategory} "Categories retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/categories [get]
func (c *PostController) GetCategories(ctx *gin.Context) {
	categories, err := c.postService.GetCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}

// CreateCategory adds a post category
// @Summary Create a post category
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostCategoryRequest true "Category payload"
// @Success 201 {object} dto.APIResponse{data=models.PostCategory} "Category created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/posts/categories [post]
func (c *PostController) CreateCategory(ctx *gin.Context) {
	var req dto.CreatePostCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	category, err := c.postService.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

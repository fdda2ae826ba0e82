package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/middleware"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// ApplicationController handles Istanbul application operations
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Submit handles the public application form
// @Summary Submit a school application
// @Description Registers a school's tournament application with its sport branch categories. A school can apply only once; a repeated submission answers with 400 and the existing application id.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application payload"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationCreatedResponse} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or school already applied"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Submit(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.applicationService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetAll lists applications for the admin panel
// @Summary List applications
// @Description Retrieves a page of applications, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/applications [get]
func (c *ApplicationController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	applications, pagination, err := c.applicationService.GetAll(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       applications,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetByID retrieves one application
// @Summary Get application details
// @Description Retrieves one application with its school and ordered categories
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// Delete removes an application
// @Summary Delete an application
// @Description Removes an application together with its category rows
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/applications/{id} [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application deleted"},
		Timestamp: time.Now(),
	})
}

// parseIDParam reads a positive int64 path parameter, answering 400 itself
// when the value is not a number.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

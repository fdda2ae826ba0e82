package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/middleware"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// NationalApplicationController handles national application operations
type NationalApplicationController struct {
	nationalApplicationService services.NationalApplicationService
}

// NewNationalApplicationController creates a new NationalApplicationController
func NewNationalApplicationController(nationalApplicationService services.NationalApplicationService) *NationalApplicationController {
	return &NationalApplicationController{
		nationalApplicationService: nationalApplicationService,
	}
}

// Submit handles the public national application form
// @Summary Submit a national application
// @Description Registers a national tournament application for a directory school. A school can apply only once.
// @Tags national-applications
// @Accept json
// @Produce json
// @Param request body dto.CreateNationalApplicationRequest true "National application payload"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationCreatedResponse} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or school already applied"
// @Failure 404 {object} dto.ErrorResponse "School not found in national directory"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /national/applications [post]
func (c *NationalApplicationController) Submit(ctx *gin.Context) {
	var req dto.CreateNationalApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.nationalApplicationService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetAll lists national applications for the admin panel
// @Summary List national applications
// @Tags national-applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]dto.NationalApplicationResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/national-applications [get]
func (c *NationalApplicationController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	applications, pagination, err := c.nationalApplicationService.GetAll(ctx.Request.Context(), page, size)
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

// GetByID retrieves one national application
// @Summary Get national application details
// @Tags national-applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.NationalApplicationResponse} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/national-applications/{id} [get]
func (c *NationalApplicationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.nationalApplicationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// Delete removes a national application
// @Summary Delete a national application
// @Tags national-applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/national-applications/{id} [delete]
func (c *NationalApplicationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.nationalApplicationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application deleted"},
		Timestamp: time.Now(),
	})
}

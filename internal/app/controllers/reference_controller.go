package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/middleware"
)

// ReferenceController serves the read-only data behind the public form
// selectors.
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// GetBranches returns the sport branch catalog
// @Summary Get the branch catalog
// @Description Lists the sport branches with their age categories, weight classes and registration-number requirements
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BranchResponse} "Catalog retrieved"
// @Router /reference/branches [get]
func (c *ReferenceController) GetBranches(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.referenceService.GetBranches(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}

// GetDistricts lists the directory districts of one side of Istanbul
// @Summary Get districts
// @Tags reference
// @Produce json
// @Param side query string true "City side" Enums(Anadolu,Avrupa)
// @Success 200 {object} dto.APIResponse{data=[]string} "Districts retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid side"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reference/districts [get]
func (c *ReferenceController) GetDistricts(ctx *gin.Context) {
	districts, err := c.referenceService.GetDistricts(ctx.Request.Context(), ctx.Query("side"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      districts,
		Timestamp: time.Now(),
	})
}

// GetDistrictSchools lists the directory school names of one district
// @Summary Get district schools
// @Tags reference
// @Produce json
// @Param district query string true "District name"
// @Success 200 {object} dto.APIResponse{data=dto.DistrictSchoolsResponse} "Schools retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing district"
// @Failure 404 {object} dto.ErrorResponse "District has no directory schools"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reference/schools [get]
func (c *ReferenceController) GetDistrictSchools(ctx *gin.Context) {
	schools, err := c.referenceService.GetDistrictSchools(ctx.Request.Context(), ctx.Query("district"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schools,
		Timestamp: time.Now(),
	})
}

// ListSchools lists the schools resolved through the submission flows
// @Summary List resolved schools
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SchoolResponse} "Schools retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/schools [get]
func (c *ReferenceController) ListSchools(ctx *gin.Context) {
	schools, err := c.referenceService.GetSchools(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schools,
		Timestamp: time.Now(),
	})
}

// GetSchool retrieves one resolved school
// @Summary Get school details
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SchoolResponse} "School retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/schools/{id} [get]
func (c *ReferenceController) GetSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	school, err := c.referenceService.GetSchool(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      school,
		Timestamp: time.Now(),
	})
}

// SearchOkullar searches the national school directory
// @Summary Search national schools
// @Description Typeahead search over the national school directory by name, optionally narrowed to a city
// @Tags reference
// @Produce json
// @Param q query string true "Name query, minimum 2 characters"
// @Param city query string false "City filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Okul} "Schools retrieved"
// @Failure 400 {object} dto.ErrorResponse "Query too short"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reference/okullar [get]
func (c *ReferenceController) SearchOkullar(ctx *gin.Context) {
	okullar, err := c.referenceService.SearchOkullar(ctx.Request.Context(), ctx.Query("q"), ctx.Query("city"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      okullar,
		Timestamp: time.Now(),
	})
}

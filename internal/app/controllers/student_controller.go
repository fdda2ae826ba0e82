package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/middleware"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
)

// StudentController handles student registration operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Register handles the public student registration form
// @Summary Register students
// @Description Registers a batch of students of one school for one sport branch. Branches that require a federation registration number reject students without one.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRegistrationRequest true "Registration payload"
// @Success 201 {object} dto.APIResponse{data=dto.StudentRegistrationCreatedResponse} "Students registered"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.CreateStudentRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetAll lists student registrations for the admin panel
// @Summary List students
// @Description Retrieves a page of student registrations, optionally filtered by branch or school
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Param sportBranch query string false "Filter by sport branch"
// @Param schoolId query int false "Filter by school"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := repositories.StudentFilter{
		SportBranch: ctx.Query("sportBranch"),
	}
	if schoolIDStr := ctx.Query("schoolId"); schoolIDStr != "" {
		schoolID, err := strconv.ParseInt(schoolIDStr, 10, 64)
		if err != nil || schoolID <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schoolId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.SchoolID = schoolID
	}

	students, pagination, err := c.studentService.GetAll(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       students,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetByID retrieves one student registration
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// Update edits one student row
// @Summary Update a student
// @Description Edits a student's personal fields. The school and branch bindings cannot be changed.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Student fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// Delete removes one student registration
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted"},
		Timestamp: time.Now(),
	})
}

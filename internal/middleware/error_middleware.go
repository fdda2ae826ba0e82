package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. When the error is
// a CustomError its message and details (the existing application id on
// conflicts, the offending field on validation failures) travel into the
// response body.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		if custom.Details != nil {
			details = custom.Details
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrApplicationExists):
		// The public form treats a duplicate submission as a client
		// mistake, so the conflict answers with 400.
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeApplicationExists, message)
		if details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		if details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrSchoolNotFound),
		errors.Is(err, apperrors.ErrOkulNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrPostCategoryNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

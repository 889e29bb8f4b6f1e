package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to API responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Registration not found"),
		})
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Registration already enrolled"),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Resource already exists"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
	case errors.Is(err, apperrors.ErrInvalidFormat), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request"),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

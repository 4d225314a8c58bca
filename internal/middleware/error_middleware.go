package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

// HandleAPIError writes the error response for err.
// Domain errors keep their client message; anything unknown becomes a
// generic 500 and is only logged.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// errorDetail maps an error onto a status code and error detail
func errorDetail(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.HandleValidationError(err)
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, apperrors.Message(err, "Bad request"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err, "Resource already exists"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrMissingSessionIdentifier):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeMissingSessionIdentifier, apperrors.Message(err, "Session identifier is missing"))
	case errors.Is(err, apperrors.ErrMissingToken):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeMissingToken, apperrors.Message(err, "Session token is missing"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, apperrors.Message(err, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, apperrors.Message(err, "Invalid token"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, apperrors.Message(err, "Token not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, apperrors.Message(err, "Permission denied"))
	case errors.Is(err, apperrors.ErrConfiguration):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeConfiguration, apperrors.Message(err, "Server configuration error")).
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal Server Error")
	}
}

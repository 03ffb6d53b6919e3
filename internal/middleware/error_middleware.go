package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/pkg/apperrors"
	"github.com/interntrack/server/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Unknown errors are
// logged in full and reported to the client as a generic server error.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	case errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrFacultyAlreadyExists),
		errors.Is(err, apperrors.ErrInternshipExists):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, message)

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrInvalidPassword):
		// Login misses and bad passwords share a response shape so the
		// API does not leak which part of the credential was wrong
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message)

	case errors.Is(err, apperrors.ErrInternshipNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

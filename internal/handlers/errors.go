package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrInUse):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides unexpected errors from clients.
func publicMessage(status int, err error, fallback string) string {
	if status == http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}

// logServiceError logs client errors as warnings and everything else as errors.
func logServiceError(logger *slog.Logger, status int, msg string, err error) {
	if status < http.StatusInternalServerError {
		logger.Warn(msg, slog.String("error", err.Error()))
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
}

func respondServiceError(c *gin.Context, logger *slog.Logger, err error, msg, fallback string) {
	status := statusForError(err)
	logServiceError(logger, status, msg, err)
	c.JSON(status, gin.H{"error": publicMessage(status, err, fallback)})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher portssvc.ChangePublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Notify publishes a committed change. Failures are logged and otherwise ignored.
func (s *BaseService) Notify(ctx context.Context, userID string, entity domain.Entity, op domain.ChangeOp, id string) {
	if s.Publisher == nil {
		return
	}
	event := domain.ChangeEvent{User: userID, Entity: entity, Op: op, ID: id, Timestamp: time.Now().UTC()}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish change event",
			slog.String("entity", string(entity)),
			slog.String("op", string(op)))
	}
}

// writeError classifies a failed repository write. Not-found, duplicate and
// validation errors pass through; anything else becomes ErrPersistence.
func writeError(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

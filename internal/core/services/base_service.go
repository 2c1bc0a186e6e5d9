package services

import (
	"context"
	"log/slog"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
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

// AuthorizeOwner enforces the single-owner-per-record model: a user may only
// touch records they own.
func (s *BaseService) AuthorizeOwner(ctx context.Context, ownerID, requestingUserID string) error {
	if ownerID != requestingUserID {
		s.LogDebug(ctx, "Ownership check failed",
			slog.String("owner_id", ownerID),
			slog.String("requesting_user_id", requestingUserID))
		return apperrors.ErrForbidden
	}
	return nil
}

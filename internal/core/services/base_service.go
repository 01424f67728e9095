package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// validate checks `validate:` struct tags on service inputs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the timezone in which calendar-day filters are interpreted.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// Location returns the configured timezone, UTC by default.
func (s *BaseService) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs unexpected errors only; client errors are the caller's concern.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.StatusCode(err) >= 500 {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
}

// validationErrorf builds an error matching apperrors.ErrValidation.
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// referenceError turns a missing referenced entity into a validation error,
// leaving storage failures untouched.
func referenceError(kind, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return validationErrorf("%s %s does not exist", kind, id)
	}
	return err
}

// invalidStatef builds an error matching apperrors.ErrInvalidState.
func invalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidState, fmt.Sprintf(format, args...))
}

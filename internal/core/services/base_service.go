package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
	newID func() string
}

func newBaseService() BaseService {
	return BaseService{clock: time.Now, newID: uuid.NewString}
}

// Now returns the current time in UTC from the service clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// NewID returns a fresh identifier for journals, lines and records.
func (s *BaseService) NewID() string {
	if s.newID == nil {
		return uuid.NewString()
	}
	return s.newID()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Option configures the clock and id source shared by every service.
type Option func(*BaseService)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *BaseService) {
		s.newID = newID
	}
}

func applyOptions(base *BaseService, opts []Option) {
	for _, opt := range opts {
		opt(base)
	}
}

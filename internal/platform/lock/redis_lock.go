package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyLockKey is returned when WithLock is called without a key.
	ErrEmptyLockKey = errors.New("lock key cannot be empty")
	// ErrNilLockFn is returned when WithLock is called without a function.
	ErrNilLockFn = errors.New("lock function is nil")
)

// Options tune how a posting lock is acquired.
type Options struct {
	Expiry      time.Duration
	Tries       int
	RetryDelay  time.Duration
	DriftFactor float64
}

// DefaultOptions mirrors the expiry the posting engine is configured with.
func DefaultOptions(expiry time.Duration) Options {
	return Options{
		Expiry:      expiry,
		Tries:       32,
		RetryDelay:  100 * time.Millisecond,
		DriftFactor: 0.01,
	}
}

// RedisLocker is a redsync mutex per key, shared by every process pointing at the same Redis.
type RedisLocker struct {
	redsync *redsync.Redsync
	opts    Options
}

// NewRedisLocker creates a locker on top of an existing go-redis client.
func NewRedisLocker(client redis.UniversalClient, opts Options) *RedisLocker {
	return &RedisLocker{
		redsync: redsync.New(goredis.NewPool(client)),
		opts:    opts,
	}
}

// NewRedisLockerFromURL parses a redis:// URL, pings the server and returns a locker with its client.
func NewRedisLockerFromURL(ctx context.Context, url string, opts Options) (*RedisLocker, *redis.Client, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisLocker(client, opts), client, nil
}

// WithLock runs fn while holding the mutex for key. The mutex is released when fn returns.
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return ErrNilLockFn
	}
	if strings.TrimSpace(key) == "" {
		return ErrEmptyLockKey
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	mutex := l.redsync.NewMutex(
		key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
		redsync.WithDriftFactor(l.opts.DriftFactor),
	)

	if err := mutex.LockContext(ctx); err != nil {
		logger.Error("Failed to acquire posting lock", slog.String("lock_key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	logger.Debug("Posting lock acquired", slog.String("lock_key", key))

	defer func() {
		// Release with a fresh context so a cancelled request still frees the key
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			logger.Warn("Failed to release posting lock", slog.String("lock_key", key), slog.Bool("unlock_ok", ok), slog.Any("error", err))
		}
	}()

	return fn(ctx)
}

// Package cache stores short-lived OTP codes in Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const otpKeyPrefix = "otp:"

// Cache is the Redis adapter for OTP codes.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SaveOTP writes the code for the email with the given TTL, replacing any
// previous code. The last issued code is the only valid one.
func (c *Cache) SaveOTP(ctx context.Context, email, code string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SaveOTP")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, otpKeyPrefix+email, code, ttl).Err()
	return err
}

// GetOTP returns the currently valid code for the email, or
// goerror.ErrNotFound when no code is live.
func (c *Cache) GetOTP(ctx context.Context, email string) (code string, err error) {
	ctx, span := c.startSpan(ctx, "GetOTP")
	defer func() { c.endSpan(span, err) }()

	code, err = c.client.Get(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	return code, err
}

// DeleteOTP removes the code for the email. Deleting a missing code is a no-op.
func (c *Cache) DeleteOTP(ctx context.Context, email string) (err error) {
	ctx, span := c.startSpan(ctx, "DeleteOTP")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Del(ctx, otpKeyPrefix+email).Err()
	return err
}

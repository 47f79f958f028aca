package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// IsLogged reports whether the coach session behind token exists and has not outlived the TTL.
// An unknown token is not an error.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginChecker.isLogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	createdAtUnixStr, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse session created at: %w", err)
	}
	// logged out sessions are kept with a zero timestamp until cleaned
	if createdAtUnix <= 0 {
		return false, nil
	}

	createdAt := time.Unix(createdAtUnix, 0)
	return c.nowFunc().Sub(createdAt) <= c.ttl, nil
}

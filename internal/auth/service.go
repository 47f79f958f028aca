package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitcoach-session||"
	tokensSetKey     = "fitcoach-sessions"
	tokenLength      = 35
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrSessionNotFound  = errors.New("session not found")
)

// Admin is the coach account allowed to open sessions.
type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	nowFunc     func() time.Time
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		nowFunc:        time.Now,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if creds.Username != as.admin.Username || !pkg.CheckPasswordHash(creds.Password, as.admin.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, createdAt.Unix(), 0).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

// Logout invalidates the session. It returns false if the session was already logged out.
func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionKey := sessionKeyPrefix + token
	createdAtUnixStr, err := as.redisClient.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, ErrSessionNotFound
	}
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse session created at: %w", err)
	}

	if err := as.redisClient.Set(ctx, sessionKey, 0, 0).Err(); err != nil {
		return false, fmt.Errorf("reset session: %w", err)
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("remove session token: %w", err)
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAtUnixStr, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// dangling token in the set
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAt := time.Unix(createdAtUnix, 0)
		if as.nowFunc().Sub(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Infof("=> auth service, scan and clean done, removed %d sessions", len(toRemove))
}

// RunCleanup calls ScanAndClean every interval until ctx is done.
func (as *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			as.ScanAndClean(ctx)
		}
	}
}

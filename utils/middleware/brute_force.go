package middleware

import (
	"context"
	"fmt"
	"time"
)

// ThrottleCache is the subset of cache operations the login guard needs.
// *cache.RedisCache satisfies it.
type ThrottleCache interface {
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// BruteForceProtection applies progressive lockouts to failed login attempts
// keyed by client IP. A nil *BruteForceProtection is valid and does nothing,
// so callers do not have to care whether Redis is configured.
type BruteForceProtection struct {
	cache ThrottleCache
}

// NewBruteForceProtection creates a new brute force protection instance
func NewBruteForceProtection(c ThrottleCache) *BruteForceProtection {
	return &BruteForceProtection{
		cache: c,
	}
}

// IsLocked reports whether the IP is currently locked out and, if so, for how
// many more seconds.
func (b *BruteForceProtection) IsLocked(ctx context.Context, ip string) (bool, int) {
	if b == nil || ip == "" {
		return false, 0
	}

	lockKey := fmt.Sprintf("brute_force:lock:%s", ip)

	locked, err := b.cache.Exists(ctx, lockKey)
	if err != nil {
		// If Redis is down, allow the request.
		// Don't block legitimate users due to cache issues.
		return false, 0
	}
	if !locked {
		return false, 0
	}

	ttl, _ := b.cache.TTL(ctx, lockKey)
	retryAfter := int(ttl.Seconds())
	if retryAfter < 0 {
		retryAfter = 60
	}
	return true, retryAfter
}

// RecordFailedAttempt records a failed login attempt and applies progressive lockouts
func (b *BruteForceProtection) RecordFailedAttempt(ctx context.Context, ip string) {
	if b == nil || ip == "" {
		return
	}

	attemptKey := fmt.Sprintf("brute_force:attempts:%s", ip)
	lockKey := fmt.Sprintf("brute_force:lock:%s", ip)

	attempts, err := b.cache.Increment(ctx, attemptKey)
	if err != nil {
		return
	}

	// 15 minute counting window
	if attempts == 1 {
		b.cache.Expire(ctx, attemptKey, 15*time.Minute)
	}

	var lockDuration time.Duration
	switch {
	case attempts >= 25:
		lockDuration = 24 * time.Hour
	case attempts >= 10:
		lockDuration = 1 * time.Hour
	case attempts >= 5:
		lockDuration = 15 * time.Minute
	default:
		return
	}

	b.cache.Set(ctx, lockKey, attempts, lockDuration)
}

// RecordSuccessfulAttempt clears the failure counters for an IP
func (b *BruteForceProtection) RecordSuccessfulAttempt(ctx context.Context, ip string) {
	if b == nil || ip == "" {
		return
	}

	b.cache.Delete(ctx,
		fmt.Sprintf("brute_force:attempts:%s", ip),
		fmt.Sprintf("brute_force:lock:%s", ip),
	)
}

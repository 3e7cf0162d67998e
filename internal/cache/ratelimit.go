package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespaces. User and IP limits never share a key.
const (
	userLimitPrefix = "photovault:rl:user:"
	ipLimitPrefix   = "photovault:rl:ip:"
)

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// gcraScript implements the generic cell rate algorithm. The only state is
// the theoretical arrival time (TAT) of the next request, in milliseconds.
//
// KEYS[1] limiter key
// ARGV[1] emission interval in ms
// ARGV[2] burst
// ARGV[3] now in ms
//
// Returns {allowed, retry_after_ms, remaining, reset_after_ms}.
var gcraScript = redis.NewScript(`
local interval = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local tat = tonumber(redis.call('GET', KEYS[1]) or now)
if tat < now then
	tat = now
end

local next_tat = tat + interval
local allow_at = next_tat - burst * interval

if now < allow_at then
	return {0, allow_at - now, 0, tat - now}
end

redis.call('SET', KEYS[1], next_tat, 'PX', next_tat - now)
local remaining = math.floor((now - allow_at) / interval)
return {1, 0, remaining, next_tat - now}
`)

// CheckUserRateLimit admits one request for userID.
// A non-positive rate disables the limit.
func (c *Cache) CheckUserRateLimit(ctx context.Context, userID string, ratePerMinute, burst int) (*RateLimitResult, error) {
	return c.admit(ctx, userLimitPrefix+userID, ratePerMinute, burst)
}

// CheckIPRateLimit admits one request for ip. Only a hash of the address
// reaches Redis.
func (c *Cache) CheckIPRateLimit(ctx context.Context, ip string, ratePerMinute, burst int) (*RateLimitResult, error) {
	return c.admit(ctx, ipLimitPrefix+hashIP(ip), ratePerMinute, burst)
}

func (c *Cache) admit(ctx context.Context, key string, ratePerMinute, burst int) (*RateLimitResult, error) {
	if ratePerMinute <= 0 {
		return unlimited(burst), nil
	}
	if burst <= 0 {
		burst = 1
	}

	interval := emissionInterval(ratePerMinute)
	now := time.Now()

	out, err := gcraScript.Run(ctx, c.client, []string{key},
		interval.Milliseconds(), burst, now.UnixMilli(),
	).Int64Slice()
	if err != nil || len(out) != 4 {
		// Redis trouble never blocks uploads.
		return unlimited(burst), nil
	}

	return &RateLimitResult{
		Allowed:    out[0] == 1,
		RetryAfter: roundUpToSecond(time.Duration(out[1]) * time.Millisecond),
		Remaining:  out[2],
		ResetAt:    now.Add(time.Duration(out[3]) * time.Millisecond),
	}, nil
}

// emissionInterval is the spacing between requests at a steady rate.
func emissionInterval(ratePerMinute int) time.Duration {
	return time.Minute / time.Duration(ratePerMinute)
}

// roundUpToSecond keeps Retry-After from advertising a wait shorter than
// the real one.
func roundUpToSecond(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return ((d + time.Second - 1) / time.Second) * time.Second
}

func unlimited(burst int) *RateLimitResult {
	return &RateLimitResult{
		Allowed:   true,
		Remaining: int64(burst),
		ResetAt:   time.Now().Add(time.Minute),
	}
}

func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

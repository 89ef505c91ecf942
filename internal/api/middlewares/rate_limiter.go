package middlewares

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/redis/go-redis/v9"
)

type KeyFunc func(r *http.Request) string

// PerIPKey buckets callers by client address.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may hold a list: client, proxy1, proxy2...
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// tokenBucketLua refills at ARGV[1] tokens/s up to ARGV[2] and takes one.
// Returns {allowed (1/0), remaining, retry_after_ms}.
const tokenBucketLua = `
local key  = KEYS[1]
local rate = tonumber(ARGV[1])
local cap  = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = (tonumber(t[1]) * 1000) + math.floor(tonumber(t[2]) / 1000)

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts     = tonumber(data[2])
if tokens == nil then
  tokens = cap
  ts = now_ms
end

local delta_ms = now_ms - ts
if delta_ms > 0 then
  tokens = math.min(cap, tokens + (delta_ms / 1000.0) * rate)
end

local allowed = 0
local retry_after_ms = 0
if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
else
  retry_after_ms = math.ceil((1.0 - tokens) * 1000.0 / rate)
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now_ms)
redis.call('PEXPIRE', key, math.ceil((cap / rate) * 1000.0))

return {allowed, math.floor(tokens), retry_after_ms}
`

// TokenBucket limits write traffic per client using Redis. A nil client
// disables limiting, and Redis failures let the request through.
type TokenBucket struct {
	rdb      redis.Scripter
	keyFn    KeyFunc
	ratePerS float64
	burst    int
	script   *redis.Script
}

func NewTokenBucket(rdb redis.Scripter, ratePerSecond float64, burst int, keyFn KeyFunc) *TokenBucket {
	return &TokenBucket{
		rdb:      rdb,
		keyFn:    keyFn,
		ratePerS: ratePerSecond,
		burst:    burst,
		script:   redis.NewScript(tokenBucketLua),
	}
}

func (tb *TokenBucket) Middleware(next http.Handler) http.Handler {
	if tb == nil || tb.rdb == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := tb.keyFn(r)
		res, err := tb.script.Run(r.Context(), tb.rdb, []string{key},
			strconv.FormatFloat(tb.ratePerS, 'f', -1, 64),
			strconv.Itoa(tb.burst),
		).Int64Slice()
		if err != nil || len(res) != 3 {
			log.Printf("[ratelimit] redis error: %v (allowing request)", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(tb.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))

		if res[0] != 1 {
			sec := (res[2] + 999) / 1000
			if sec < 1 {
				sec = 1
			}
			w.Header().Set("Retry-After", strconv.FormatInt(sec, 10))
			log.Printf("[ratelimit] blocked %s %s key=%s retry=%ds", r.Method, r.URL.Path, key, sec)
			apperr.WriteStatus(w, r, http.StatusTooManyRequests, "", "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter aplica un token bucket por sesión (o por IP si no hay claims).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
	lastGC   time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(rps),
		burst:    burst,
		idle:     5 * time.Minute,
		now:      time.Now,
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// limpieza perezosa, sin goroutine de fondo
	if now.Sub(rl.lastGC) > rl.idle {
		for k, e := range rl.limiters {
			if now.Sub(e.lastSeen) > rl.idle {
				delete(rl.limiters, k)
			}
		}
		rl.lastGC = now
	}

	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := SessionID(r.Context())
		if !ok {
			key = r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				key = fwd
			}
		}

		if !rl.get(key).AllowN(rl.now(), 1) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

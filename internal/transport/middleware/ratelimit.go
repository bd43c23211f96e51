package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter implements per-IP rate limiting on top of rate.Limiter.
type RateLimiter struct {
	clients  sync.Map // map[string]*client
	stop     chan struct{}
	stopOnce sync.Once
	idleTTL  time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

func (c *client) allow(now time.Time) bool {
	c.lastSeen.Store(now.UnixNano())
	return c.limiter.AllowN(now, 1)
}

// NewRateLimiter creates a rate limiter whose idle clients are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), idleTTL: 10 * time.Minute}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client IP,
// with bursts up to maxPerMinute. A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(60/maxPerMinute + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.getClient(clientIP(r), maxPerMinute).allow(time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func newClient(maxPerMinute int) *client {
	c := &client{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), maxPerMinute),
	}
	c.lastSeen.Store(time.Now().UnixNano())
	return c
}

func (rl *RateLimiter) getClient(key string, maxPerMinute int) *client {
	if val, ok := rl.clients.Load(key); ok {
		return val.(*client)
	}
	val, _ := rl.clients.LoadOrStore(key, newClient(maxPerMinute))
	return val.(*client)
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		if now.Sub(time.Unix(0, c.lastSeen.Load())) > rl.idleTTL {
			rl.clients.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

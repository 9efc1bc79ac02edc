package middlewares

import (
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter      *rate.Limiter
	lastSeen     time.Time
	blockedUntil time.Time
}

type rateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerMinute int
	blockTime         time.Duration
}

func newRateLimiter(requestsPerMinute int, blockTime time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerMinute: requestsPerMinute,
		blockTime:         blockTime,
	}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) cleanup() {
	for range time.Tick(5 * time.Minute) {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute && time.Now().After(v.blockedUntil) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow reports whether the IP may proceed. Exhausting the limiter blocks
// the IP for the configured block time, not just until tokens refill.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, found := rl.visitors[ip]
	if !found {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.requestsPerMinute)), rl.requestsPerMinute),
		}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	if time.Now().Before(v.blockedUntil) {
		return false
	}
	if !v.limiter.Allow() {
		v.blockedUntil = time.Now().Add(rl.blockTime)
		return false
	}
	return true
}

// AuthRateLimiter throttles credential endpoints per client IP. Blocked
// clients stay blocked for the configured cool-off window.
func (m *Middlewares) AuthRateLimiter() func(http.Handler) http.Handler {
	limiter := newRateLimiter(
		m.InternalConfig.App.AuthMaxRequestsPerMinute,
		time.Duration(m.InternalConfig.App.AuthBlockTimeInMinutes)*time.Minute,
	)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.allow(ip) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

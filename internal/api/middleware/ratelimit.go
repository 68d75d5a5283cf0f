package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/orderpulse/orderpulse/internal/metrics"
)

// RateLimiter throttles requests per merchant using a token bucket.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter creates a per-merchant limiter allowing perSecond
// requests with the given burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiter(merchantID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[merchantID]
	if !ok {
		l = rate.NewLimiter(rl.perSecond, rl.burst)
		rl.limiters[merchantID] = l
	}
	return l
}

// Middleware returns Echo middleware enforcing the limit. It must be
// registered after Auth so the merchant identity is available; requests
// without one share a single bucket keyed by the empty string.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiter(MerchantID(c)).Allow() {
				metrics.IngestionThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

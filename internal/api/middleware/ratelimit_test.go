package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedEcho(rl *RateLimiter, merchantID string) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(merchantIDKey, merchantID)
			return next(c)
		}
	})
	e.Use(rl.Middleware())
	e.POST("/orders", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	})
	return e
}

func doPost(e *echo.Echo) int {
	req := httptest.NewRequest(http.MethodPost, "/orders", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3)
	e := rateLimitedEcho(rl, "m1")

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusAccepted, doPost(e))
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 2)
	e := rateLimitedEcho(rl, "m1")

	assert.Equal(t, http.StatusAccepted, doPost(e))
	assert.Equal(t, http.StatusAccepted, doPost(e))
	assert.Equal(t, http.StatusTooManyRequests, doPost(e))
}

func TestRateLimiter_BucketsAreIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 1)

	e1 := rateLimitedEcho(rl, "m1")
	e2 := rateLimitedEcho(rl, "m2")

	// Exhaust m1's bucket; m2 is unaffected.
	assert.Equal(t, http.StatusAccepted, doPost(e1))
	assert.Equal(t, http.StatusTooManyRequests, doPost(e1))
	assert.Equal(t, http.StatusAccepted, doPost(e2))
}

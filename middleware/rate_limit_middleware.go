package middleware

import (
	"net/http"

	"skillbridge/utils/rate_limiter"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware applies a per-client token bucket keyed by the caller's
// real IP. Health checks bypass it so orchestrator probes never get throttled.
func RateLimitMiddleware(limiter *rate_limiter.ClientRateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/v1/health" {
				return next(c)
			}
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

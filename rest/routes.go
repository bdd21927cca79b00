package rest

import (
	"net/http"

	"skillbridge/config"
	"skillbridge/di"
	middleware_custom "skillbridge/middleware"
	"skillbridge/utils/logger"
	"skillbridge/utils/rate_limiter"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every later log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// 4. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Requested-With"},
		MaxAge:       86400,
	}))

	// 5. Per-client rate limiting
	limiter := rate_limiter.NewClientRateLimiter(
		float64(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	e.Use(middleware_custom.RateLimitMiddleware(limiter))

	// 6. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	// 7. Logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 8. Compression last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	})

	identity := middleware_custom.NewIdentityMiddleware(logger.Logger, cfg)
	v1.GET("/feed", RestHandleFetchFeed(container.AssembleFeedUsecase), identity.RequireIdentity())
}

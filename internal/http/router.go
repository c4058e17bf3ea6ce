// Package httpapi wires the HTTP transport (Gin) to the bot, middleware,
// and route handlers. It centralizes cross-cutting concerns such as tracing,
// correlation IDs, logging, panic recovery, metrics, webhook authentication,
// and rate limiting.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip response compression
//  7. Metrics
//  8. Rate limiter (per IP)
//
// The webhook secret check is scoped to the webhook route itself so /health
// and /metrics stay reachable for probes and scrapers.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/config"
	"github.com/649000/currency-coinverter-bot/internal/http/handlers"
	"github.com/649000/currency-coinverter-bot/internal/http/middleware"
)

// RegisterRoutes attaches all middleware and endpoints to the given Gin
// engine. The bot's update router is injected via the webhook handler's
// UpdateRouter interface.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, router handlers.UpdateRouter, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// Global body size limit (1 MiB); Telegram updates are far smaller.
	r.Use(limitBody(1 << 20))

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	wh := handlers.NewWebhookHandler(db, router, cfg.DedupeTTL)
	r.POST("/telegram/webhook",
		middleware.WebhookSecret(cfg.Telegram.WebhookSecret),
		wh.HandleUpdate,
	)
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader. Requests exceeding the cap error on body read.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

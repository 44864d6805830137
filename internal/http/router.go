package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Middleware runs in this order: recovery, request id, access log,
// security headers, rate limit, read-only mode.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Warn("invalid trusted proxies, ignoring", zap.Error(err))
	}

	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(SecurityHeadersMiddleware())
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Handler())
	}
	if cfg.ReadOnlyMode != nil {
		router.Use(cfg.ReadOnlyMode.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.AuditCleanup, cfg.Version)
	authors := NewAuthorsController(cfg.AuthorStore, cfg.AuditLogger)
	books := NewBooksController(cfg.BookStore, cfg.AuditLogger)

	// Health endpoints
	router.GET("/health", health.Status)

	// Authors API endpoints
	router.POST("/authors/", authors.Create)
	router.GET("/authors/", authors.List)
	router.GET("/authors/:id", authors.Get)
	router.PUT("/authors/:id", authors.Update)
	router.DELETE("/authors/:id", authors.Delete)

	// Books API endpoints
	router.POST("/books/", books.Create)
	router.GET("/books/", books.List)
	router.GET("/books/:id", books.Get)
	router.PUT("/books/:id", books.Update)
	router.DELETE("/books/:id", books.Delete)

	// Audit log endpoints
	if cfg.AuditReader != nil {
		auditController := NewAuditController(cfg.AuditReader, cfg.AuditCleanup)
		router.GET("/audit/events", auditController.GetAuditEvents)
		router.POST("/audit/cleanup", auditController.RunCleanup)
	}

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "route")
	})

	return router
}

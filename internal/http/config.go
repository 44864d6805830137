package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/readonly"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	AuthorStore AuthorStore
	BookStore   BookStore
	Database    Pinger

	// Audit trail (optional)
	AuditLogger  AuditLogger
	AuditReader  AuditReader
	AuditCleanup AuditScheduler // nil when the task queue is disabled

	// Request handling
	Logger         *zap.Logger
	RateLimiter    *RateLimiter // nil disables rate limiting
	ReadOnlyMode   *readonly.Middleware
	TrustedProxies []string

	// Application info
	Version string
}

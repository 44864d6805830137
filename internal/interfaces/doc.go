// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorStore: Author CRUD (internal/http/stores.go)
//   - BookStore: Book CRUD (internal/http/stores.go)
//   - Pinger: Store reachability for /health (internal/http/health.go)
//
// ## Audit Interfaces
//
//   - AuditLogger: Record a successful write (internal/http/stores.go)
//   - AuditReader: List recent events (internal/http/stores.go)
//   - AuditEventCleaner: Retention cleanup (internal/tasks/cleanup_audit.go)
//
// ## Scheduling Interfaces
//
//   - AuditCleanupEnqueuer: Queue a cleanup run (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Catalog Entity
//
// To add a new record type (e.g., publishers):
//
//  1. Add the model to internal/entities and to database.Models.
//
//  2. Add validation rules and an input type in internal/catalog.
//
//  3. Create sub-package internal/database/publishers:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  4. Define the store interface and controller in internal/http and
//     register the routes in router.go.
//
//  5. Add a compile-time check to checks.go:
//
//     var _ http.PublisherStore = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces

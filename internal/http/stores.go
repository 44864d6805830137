package http

import (
	"context"
	"time"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/entities"
)

// Each controller depends only on the store methods it calls.

// AuthorStore provides CRUD access to authors.
type AuthorStore interface {
	Create(ctx context.Context, author entities.Author) (*entities.Author, error)
	ReadAll(ctx context.Context) ([]entities.Author, error)
	ReadByID(ctx context.Context, id uint) (*entities.Author, error)
	Update(ctx context.Context, id uint, author entities.Author) (*entities.Author, error)
	Delete(ctx context.Context, id uint) error
}

// BookStore provides CRUD access to books.
type BookStore interface {
	Create(ctx context.Context, book entities.Book) (*entities.Book, error)
	ReadAll(ctx context.Context) ([]entities.Book, error)
	ReadByID(ctx context.Context, id uint) (*entities.Book, error)
	Update(ctx context.Context, id uint, book entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// AuditLogger records successful writes.
type AuditLogger interface {
	LogWrite(ctx context.Context, info audit.RequestInfo, eventType entities.AuditEventType, entityType string, entityID uint, description string)
}

// AuditReader lists recorded audit events.
type AuditReader interface {
	GetEvents(ctx context.Context, eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, int64, error)
	GetEventsForEntity(ctx context.Context, entityType string, entityID uint) ([]entities.AuditEvent, error)
}

// AuditScheduler drives the periodic audit retention cleanup.
type AuditScheduler interface {
	RunNow() error
	IsRunning() bool
	GetNextRunTime() *time.Time
}

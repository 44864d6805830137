// Package audit stores the audit trail of catalog writes.
//
// # Usage
//
//	repo := audit.NewRepository(db)
//	err := repo.LogEvent(ctx, &entities.AuditEvent{EventType: entities.AuditEventCreate, ...})
//	events, total, err := repo.GetEvents(ctx, 50)
package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

const DefaultLimit = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(ctx context.Context, event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// GetEvents retrieves the most recent audit events, newest first, along with
// the total number of stored events.
func (r *Repository) GetEvents(ctx context.Context, limit int) ([]entities.AuditEvent, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&entities.AuditEvent{}), limit)
}

// GetEventsByType retrieves the most recent audit events of one type.
func (r *Repository) GetEventsByType(ctx context.Context, eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.AuditEvent{}).Where("event_type = ?", eventType)
	return r.list(query, limit)
}

// GetEventsForEntity retrieves the history of a single author or book.
func (r *Repository) GetEventsForEntity(ctx context.Context, entityType string, entityID uint) ([]entities.AuditEvent, error) {
	events := []entities.AuditEvent{}
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	return events, err
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}

func (r *Repository) list(query *gorm.DB, limit int) ([]entities.AuditEvent, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	events := []entities.AuditEvent{}
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	return events, total, err
}

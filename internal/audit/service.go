package audit

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

// RequestInfo carries the caller details recorded with each event.
type RequestInfo struct {
	IPAddress string
	UserAgent string
	RequestID string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo  *audit.Repository
	log   *zap.Logger
	async bool
	wg    sync.WaitGroup
}

// NewService creates a new audit service that writes events in the background.
func NewService(repo *audit.Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log, async: true}
}

// NewSyncService creates an audit service that writes events before returning.
func NewSyncService(repo *audit.Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking). The
// request context is not used since it ends with the response.
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(context.Background(), event); err != nil {
			s.log.Error("failed to log audit event", zap.String("action", event.Action), zap.Error(err))
		}
	}()
}

// LogWrite records a successful create, update or delete of an author or book.
func (s *Service) LogWrite(ctx context.Context, info RequestInfo, eventType entities.AuditEventType, entityType string, entityID uint, description string) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      fmt.Sprintf("%s_%s", entityType, eventType),
		Description: truncate(description, 500),
		EntityType:  entityType,
		EntityID:    &entityID,
		IPAddress:   info.IPAddress,
		UserAgent:   truncate(info.UserAgent, 500),
		RequestID:   info.RequestID,
		Status:      entities.AuditStatusSuccess,
	}

	if s.async {
		s.LogAsync(event)
		return
	}
	if err := s.Log(ctx, event); err != nil {
		s.log.Error("failed to log audit event", zap.String("action", event.Action), zap.Error(err))
	}
}

// Wait blocks until background writes have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// GetEvents retrieves the most recent audit events, optionally of one type.
func (s *Service) GetEvents(ctx context.Context, eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, int64, error) {
	if eventType != "" {
		return s.repo.GetEventsByType(ctx, eventType, limit)
	}
	return s.repo.GetEvents(ctx, limit)
}

// GetEventsForEntity returns the history of one author or book, newest first.
func (s *Service) GetEventsForEntity(ctx context.Context, entityType string, entityID uint) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(ctx, entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens a string to at most maxLen bytes without splitting a
// UTF-8 sequence.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

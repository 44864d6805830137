package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	return db
}

func TestRepository_LogEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	id := uint(1)
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      "author_create",
		Description: "Created author: Jane Austen",
		EntityType:  "author",
		EntityID:    &id,
		Status:      entities.AuditStatusSuccess,
	}

	err := repo.LogEvent(context.Background(), event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_GetEvents(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	for i := 0; i < 60; i++ {
		event := &entities.AuditEvent{
			EventType: entities.AuditEventCreate,
			Action:    "book_create",
			Status:    entities.AuditStatusSuccess,
			CreatedAt: time.Now().Add(time.Duration(-i) * time.Minute),
		}
		require.NoError(t, repo.LogEvent(ctx, event))
	}
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{
		EventType: entities.AuditEventDelete,
		Action:    "book_delete",
		Status:    entities.AuditStatusSuccess,
	}))

	t.Run("default limit", func(t *testing.T) {
		events, total, err := repo.GetEvents(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(61), total)
		assert.Len(t, events, DefaultLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		events, _, err := repo.GetEvents(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("order by created_at desc", func(t *testing.T) {
		events, _, err := repo.GetEvents(ctx, 10)
		require.NoError(t, err)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].CreatedAt.After(events[i-1].CreatedAt))
		}
		assert.Equal(t, "book_delete", events[0].Action)
	})

	t.Run("filter by type", func(t *testing.T) {
		events, total, err := repo.GetEventsByType(ctx, entities.AuditEventDelete, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, events, 1)
		assert.Equal(t, entities.AuditEventDelete, events[0].EventType)
	})
}

func TestRepository_GetEventsForEntity(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	one, two := uint(1), uint(2)
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "book", EntityID: &one}))
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{EventType: entities.AuditEventUpdate, EntityType: "book", EntityID: &one}))
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "book", EntityID: &two}))
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "author", EntityID: &one}))

	events, err := repo.GetEventsForEntity(ctx, "book", 1)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	now := time.Now()

	oldEvent := &entities.AuditEvent{
		EventType: entities.AuditEventCreate,
		Action:    "old_create",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: now.Add(-48 * time.Hour),
	}
	newEvent := &entities.AuditEvent{
		EventType: entities.AuditEventDelete,
		Action:    "new_delete",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: now.Add(-1 * time.Hour),
	}

	require.NoError(t, repo.LogEvent(ctx, oldEvent))
	require.NoError(t, repo.LogEvent(ctx, newEvent))

	// Delete events older than 24 hours
	deleted, err := repo.DeleteOldEvents(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, total, err := repo.GetEvents(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, "new_delete", events[0].Action)
}

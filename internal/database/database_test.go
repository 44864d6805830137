package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
)

func TestNewSQLiteDatabase_CreatesSchema(t *testing.T) {
	db, err := NewSQLiteDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, model := range []any{&entities.Author{}, &entities.Book{}, &entities.AuditEvent{}} {
		assert.True(t, db.DB.Migrator().HasTable(model))
	}
}

func TestNewSQLiteDatabase_EnforcesForeignKeys(t *testing.T) {
	db, err := NewSQLiteDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	defer db.Close()

	err = db.DB.Create(&entities.Book{Title: "Orphan", AuthorID: 42, TotalCopies: 1, AvailableCopies: 1}).Error
	assert.Error(t, err)
}

func TestDatabase_PingAfterClose(t *testing.T) {
	db, err := NewSQLiteDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)

	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: "oracle"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

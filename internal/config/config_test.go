package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8000), cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DeletePolicyReject, cfg.Catalog.AuthorDeletePolicy)
	assert.Equal(t, 30, cfg.Audit.RetentionDays)
	assert.Equal(t, "0 3 * * *", cfg.Audit.CleanupSchedule)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.False(t, cfg.ReadOnly.Enabled)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("CATALOG_AUTHOR_DELETE_POLICY", "cascade")
	t.Setenv("READ_ONLY", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := NewConfig()

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port, "postgres port is used when DB_PORT is unset")
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, DeletePolicyCascade, cfg.Catalog.AuthorDeletePolicy)
	assert.True(t, cfg.ReadOnly.Enabled)
	assert.InDelta(t, 2.5, cfg.RateLimit.RPS, 0.001)
}

func TestDatabase_DSN_SQLite(t *testing.T) {
	db := Database{Driver: DriverSQLite, Path: "/tmp/lib.db"}
	assert.Equal(t, "/tmp/lib.db?_foreign_keys=on", db.DSN())
}

func TestDatabase_DSN_Postgres(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "plain password", password: "secret"},
		{name: "password with space", password: "pa ss"},
		{name: "password with separators", password: "p@ss/w:rd?x=1 dbname=other"},
	}
	// An empty password would otherwise be looked up in ~/.pgpass.
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "pgpass"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := Database{Driver: DriverPostgres, Host: "db.internal", Port: 5432, User: "library", Password: tt.password, Name: "library_management", SSLMode: "disable"}

			parsed, err := pgconn.ParseConfig(db.DSN())
			require.NoError(t, err)

			assert.Equal(t, "db.internal", parsed.Host)
			assert.Equal(t, uint16(5432), parsed.Port)
			assert.Equal(t, "library", parsed.User)
			assert.Equal(t, tt.password, parsed.Password)
			assert.Equal(t, "library_management", parsed.Database)
		})
	}
}

func TestDatabase_DSN_MySQL(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
	}{
		{name: "empty password", user: "root", password: ""},
		{name: "plain password", user: "root", password: "secret"},
		{name: "credentials with separators", user: "app:user", password: "p@ss/w:rd (x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := Database{Driver: DriverMySQL, Host: "h", Port: 3306, User: tt.user, Password: tt.password, Name: "library_management"}
			dsn := db.DSN()

			parsed, err := mysql.ParseDSN(dsn)
			require.NoError(t, err)

			assert.Equal(t, tt.user, parsed.User)
			assert.Equal(t, tt.password, parsed.Passwd)
			assert.Equal(t, "tcp", parsed.Net)
			assert.Equal(t, "h:3306", parsed.Addr)
			assert.Equal(t, "library_management", parsed.DBName)
			assert.True(t, parsed.ParseTime)
			assert.Contains(t, dsn, "charset=utf8mb4")
		})
	}
}

func TestDatabase_RedactedHidesPassword(t *testing.T) {
	db := Database{Driver: DriverMySQL, Host: "h", Port: 3306, User: "root", Password: "s3cret", Name: "library"}

	redacted := db.Redacted()

	assert.NotContains(t, redacted, "s3cret")
	assert.Contains(t, redacted, "root")
	assert.Contains(t, redacted, "h:3306/library")
}

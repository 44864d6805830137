package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the SQLite catalog database
	DefaultDatabasePath = "./library.db"

	// DefaultTasksDatabasePath is the default path for the task queue database
	DefaultTasksDatabasePath = "./library-tasks.db"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

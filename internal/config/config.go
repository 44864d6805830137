package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DeletePolicy controls what happens when an author with books is deleted.
type DeletePolicy string

const (
	DeletePolicyReject  DeletePolicy = "reject"  // Refuse with a conflict (default)
	DeletePolicyCascade DeletePolicy = "cascade" // Delete the author's books as well
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Catalog
		Audit
		Tasks
		RateLimit
		ReadOnly
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   string
		Path     string // SQLite file, used when Driver is "sqlite"
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
	Catalog struct {
		AuthorDeletePolicy DeletePolicy
	}
	Audit struct {
		Enabled         bool
		RetentionDays   int    // Days to keep audit events (default: 30)
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Tasks struct {
		Enabled         bool
		DBPath          string
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	RateLimit struct {
		Enabled bool
		RPS     float64
		Burst   int
	}
	ReadOnly struct {
		Enabled bool
	}
)

// DSN builds the driver-specific connection string. Credentials are
// escaped, so any character is allowed in user names and passwords.
func (d Database) DSN() string {
	switch d.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.User(d.User),
			Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:     "/" + d.Name,
			RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
		}
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		}
		return u.String()
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
		mc.DBName = d.Name
		mc.ParseTime = true
		mc.Loc = time.Local
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	default:
		return d.Path + "?_foreign_keys=on"
	}
}

// Redacted describes the connection target without credentials, for logs.
func (d Database) Redacted() string {
	switch d.Driver {
	case DriverPostgres, DriverMySQL:
		u := url.URL{
			Scheme: d.Driver,
			User:   url.User(d.User),
			Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:   "/" + d.Name,
		}
		if d.Password != "" {
			u.User = url.UserPassword(d.User, "***")
		}
		return u.String()
	default:
		return "sqlite:" + d.Path
	}
}

func defaultPort(driver string) int {
	switch driver {
	case DriverPostgres:
		return 5432
	case DriverMySQL:
		return 3306
	}
	return 0
}

// loadEnvFiles reads .env files without overriding variables already set.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func NewConfig() *Config {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 0) // 0 = driver default
	v.SetDefault("db_user", "root")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "library_management")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_log_level", "warn")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("catalog_author_delete_policy", string(DeletePolicyReject))

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", "0 3 * * *") // Daily at 03:00

	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_db_path", DefaultTasksDatabasePath)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("rate_limit_enabled", true)
	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 20)

	v.SetDefault("read_only", false)

	driver := v.GetString("DB_DRIVER")
	dbPort := v.GetInt("DB_PORT")
	if dbPort == 0 {
		dbPort = defaultPort(driver)
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   driver,
			Path:     v.GetString("DATABASE_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     dbPort,
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Catalog: Catalog{
			AuthorDeletePolicy: DeletePolicy(v.GetString("CATALOG_AUTHOR_DELETE_POLICY")),
		},
		Audit: Audit{
			Enabled:         v.GetBool("AUDIT_ENABLED"),
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DBPath:          v.GetString("TASKS_DB_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		ReadOnly: ReadOnly{
			Enabled: v.GetBool("READ_ONLY"),
		},
	}
}

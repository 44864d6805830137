package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	auditrepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/readonly"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// rateLimiterIdle is how long a client bucket survives without requests.
const rateLimiterIdle = 5 * time.Minute

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill -9 can't be caught, so only SIGINT and SIGTERM are handled
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var listenErr error
	select {
	case listenErr = <-serveErr:
	case sig := <-quit:
		log.Info("shutting down server", zap.Stringer("signal", sig), zap.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if listenErr != nil {
		if onShutdown != nil {
			onShutdown(ctx)
		}
		return fmt.Errorf("listen: %w", listenErr)
	}

	// Stop accepting requests before background workers go away
	shutdownErr := srv.Shutdown(ctx)

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	log.Info("server exiting")
	return nil
}

// Run wires the catalog service together and serves it.
func Run(cfg *config.Config, version string, log *zap.Logger) error {
	log.Info("starting library service", zap.String("version", version))

	if cfg.Catalog.AuthorDeletePolicy != config.DeletePolicyReject &&
		cfg.Catalog.AuthorDeletePolicy != config.DeletePolicyCascade {
		return fmt.Errorf("unknown author delete policy %q", cfg.Catalog.AuthorDeletePolicy)
	}

	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	authorRepo := authors.NewRepository(db.DB, cfg.Catalog.AuthorDeletePolicy)
	bookRepo := books.NewRepository(db.DB)

	routerCfg := http_controllers.RouterConfig{
		AuthorStore: authorRepo,
		BookStore:   bookRepo,
		Database:    db,
		Logger:      log,
		Version:     version,
	}

	var auditService *audit.Service
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditrepo.NewRepository(db.DB), log)
		routerCfg.AuditLogger = auditService
		routerCfg.AuditReader = auditService
	}

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var cleanupScheduler *scheduler.AuditCleanupScheduler
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Tasks.DBPath, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}, log)
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error("error closing task client", zap.Error(err))
			}
		}()

		if auditService != nil {
			taskClient.Register(tasks.NewCleanupAuditEventsQueue(auditService, log))
		}

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		defer taskCtxCancel()
		go taskClient.Start(taskCtx)

		if auditService != nil {
			cleanupScheduler = scheduler.NewAuditCleanupScheduler(
				taskClient, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays, log)
			if err := cleanupScheduler.Start(taskCtx); err != nil {
				return fmt.Errorf("failed to start audit cleanup scheduler: %w", err)
			}
			routerCfg.AuditCleanup = cleanupScheduler
		}
	} else if cfg.Audit.Enabled {
		log.Warn("task queue disabled, audit events will not be pruned automatically")
	}

	if cfg.RateLimit.Enabled {
		routerCfg.RateLimiter = http_controllers.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimiterIdle)
	}

	routerCfg.ReadOnlyMode = readonly.NewMiddleware(cfg.ReadOnly.Enabled)
	if routerCfg.ReadOnlyMode.IsEnabled() {
		log.Info("read-only mode enabled, write operations will be blocked")
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		if routerCfg.RateLimiter != nil {
			routerCfg.RateLimiter.Stop()
		}
		if auditService != nil {
			auditService.Wait()
		}
	}

	return Serve(router, cfg, log, onShutdown)
}

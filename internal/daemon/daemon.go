package daemon

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tasklist-app/tasklist/internal/api"
	"github.com/tasklist-app/tasklist/internal/app/tasklist"
	"github.com/tasklist-app/tasklist/internal/domain"
	"github.com/tasklist-app/tasklist/internal/health"
	"github.com/tasklist-app/tasklist/internal/infra/filestore"
	"github.com/tasklist-app/tasklist/internal/infra/memstore"
	"github.com/tasklist-app/tasklist/internal/infra/metrics"
	"github.com/tasklist-app/tasklist/internal/infra/sqlite"
)

// Daemon is the tasklist runtime. It wires together all services.
type Daemon struct {
	Config  Config
	Backend domain.StorageBackend
	Store   domain.TaskStore
	Widget  *tasklist.Widget
	Server  *api.Server
	Health  *health.Checker
	Logger  *log.Logger

	logFile     io.Closer
	unsubscribe func()
	cancel      context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration. The widget
// is loaded from storage before it returns.
func NewWithConfig(cfg Config) (*Daemon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, logFile, err := openLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	backend, err := OpenBackend(cfg.Storage, logger)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := tasklist.KeyedStore(backend, cfg.Storage.Key)
	w := tasklist.New(store,
		tasklist.WithTimestampLayout(cfg.Tasks.TimestampLayout),
		tasklist.WithFilter(cfg.Filter()),
		tasklist.WithLogger(logger),
	)

	d := &Daemon{
		Config:  cfg,
		Backend: backend,
		Store:   store,
		Widget:  w,
		Logger:  logger,
		logFile: logFile,
	}

	// Gauges follow the list from the first load onwards.
	d.unsubscribe = w.Subscribe(func(s tasklist.Snapshot) {
		metrics.ObserveCounts(s.Stats.Active, s.Stats.Completed)
	})
	w.Load()

	if cfg.Logging.Level == "debug" {
		logger.Printf("[daemon] storage=%s path=%s key=%s tasks=%d",
			cfg.Storage.Backend, backendPath(backend), cfg.Storage.Key, w.Stats().Total)
	}

	dataDir := cfg.Storage.Dir
	if cfg.Storage.Backend == BackendMemory {
		dataDir = ""
	}
	d.Health = health.NewChecker(backend, dataDir)

	srv := api.NewServer(w, store)
	srv.SetHealth(d.Health)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}
	d.Server = srv

	return d, nil
}

// OpenBackend opens the configured key-value backend. logger receives
// recoverable problems found while opening, such as a corrupt storage file.
func OpenBackend(cfg StorageConfig, logger *log.Logger) (domain.StorageBackend, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		return sqlite.Open(cfg.Dir)
	case BackendFile:
		return filestore.Open(cfg.Dir, filestore.WithLogger(logger))
	case BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// backendPath names where backend keeps its data, or "-" for in-memory.
func backendPath(backend domain.StorageBackend) string {
	if p, ok := backend.(interface{ Path() string }); ok {
		return p.Path()
	}
	return "-"
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Printf("tasklist serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.unsubscribe != nil {
		d.unsubscribe()
	}
	if d.Backend != nil {
		if err := d.Backend.Close(); err != nil {
			d.Logger.Printf("[daemon] close storage: %v", err)
		}
	}
	if d.logFile != nil {
		_ = d.logFile.Close()
	}
}

// openLogger returns a logger writing to cfg.File, or to stderr when unset.
func openLogger(cfg LoggingConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return log.New(os.Stderr, "", log.LstdFlags), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), f, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vogue360/studio/internal/api"
	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/config"
	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/imaging"
	"github.com/vogue360/studio/internal/metrics"
	"github.com/vogue360/studio/internal/store"
	"github.com/vogue360/studio/internal/web"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	level  slog.Leveler
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= lr.level.Level()
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		level:  lr.level,
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		level:  lr.level,
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath, levelName string) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	logger := slog.New(&levelRouter{
		level:  level,
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	})
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("vogue360", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")

	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")

	fs.StringVar(&cfg.LogLevel, "level", cfg.LogLevel, "")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "")

	fs.StringVar(&cfg.AdminEmail, "email", cfg.AdminEmail, "")
	fs.StringVar(&cfg.AdminEmail, "e", cfg.AdminEmail, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: vogue360 [flags]

Flags:
  -a, -addr <host:port>   listen address (default: $VOGUE_ADDR or :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -v, -level <level>      log level: debug, info, warn, error (default: info)
  -e, -email <address>    admin login email (default: $VOGUE_ADMIN_EMAIL)
  -h, -help               show this help and exit

The admin password, session secret, delays and limits are read from
VOGUE_* environment variables.
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	logger, closeLog, err := setupLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	handler, err := newHandler(cfg, logger)
	if err != nil {
		slog.Error("failed to set up server", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr, "admin", cfg.AdminEmail)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newHandler wires the stores, session manager and routers.
func newHandler(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	m := metrics.New()

	bookings := store.NewBookings()
	catalog := store.NewCatalog()
	bookings.Observe(m.ObserveMutation)
	catalog.Observe(m.ObserveMutation)

	manager, err := auth.NewManager(auth.Config{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Secret:   cfg.SessionSecret,
		Expiry:   cfg.SessionTTL,
		Delay:    cfg.LoginDelay,
	})
	if err != nil {
		return nil, err
	}

	consoles := console.NewRegistry(console.Deps{
		Bookings:        bookings,
		Catalog:         catalog,
		NotificationTTL: cfg.NotificationTTL,
		OnNotify:        m.ObserveNotification,
		Logger:          logger,
	})

	webRouter, err := web.NewRouter(web.Deps{
		Bookings:     bookings,
		Catalog:      catalog,
		Images:       store.NewImages(),
		Auth:         manager,
		Consoles:     consoles,
		Metrics:      m,
		Imaging:      imaging.Processor{MaxDimension: cfg.ImageMaxDimension},
		BookingDelay: cfg.BookingDelay,
		UploadLimit:  cfg.UploadLimit,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("web router: %w", err)
	}

	// Middleware order: RequestID → RealIP → request log → Recoverer.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(web.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)

	// API and metrics take priority, web pages handle the rest.
	r.Handle("/metrics", m.Handler())
	r.Mount("/api", api.NewRouter(api.Deps{
		Bookings: bookings,
		Catalog:  catalog,
		Auth:     manager,
		Consoles: consoles,
		Logger:   logger,
	}))
	r.Mount("/", webRouter)

	return r, nil
}

// Command api runs the Greenscape marketing-site backend: the public quote
// and lead endpoints plus the operator admin API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"greenscape_backend/internal/catalog"
	"greenscape_backend/internal/events"
	apphttp "greenscape_backend/internal/http"
	"greenscape_backend/internal/http/router"
	"greenscape_backend/internal/leads"
	"greenscape_backend/internal/notification"
	"greenscape_backend/internal/quote"
	"greenscape_backend/platform/config"
	"greenscape_backend/platform/db"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/validator"
)

const (
	migrationsDir   = "migrations"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := withRetry(ctx, log, "run migrations", func() error {
		return db.RunMigrations(ctx, cfg, migrationsDir)
	}); err != nil {
		log.Error("migrations failed", "error", err.Error())
		os.Exit(1)
	}

	pool := mustPool(ctx, cfg, log)
	defer pool.Close()

	val := validator.New()
	bus := events.NewInMemoryBus(log)

	var sender notification.Sender
	if cfg.GetEmailEnabled() && cfg.GetLeadAlertRecipient() != "" {
		sender = notification.NewSMTPSender(cfg, log)
	} else {
		sender = notification.NewNoopSender(log)
		log.Info("lead alert email disabled")
	}
	notification.NewSubscriber(sender, log).Register(bus)

	catalogModule := catalog.NewModule(pool, val, log)
	quoteModule := quote.NewModule(catalogModule.Repository(), cfg, val, log)
	leadsModule := leads.NewModule(pool, catalogModule.Repository(), bus, val, log)

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: bus,
		Modules:  []apphttp.Module{catalogModule, quoteModule, leadsModule},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.GetHTTPAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", "error", err.Error())
	}
	log.Info("server stopped")
}

func mustPool(ctx context.Context, cfg *config.Config, log *logger.Logger) *pgxpool.Pool {
	var pool *pgxpool.Pool
	err := withRetry(ctx, log, "connect database", func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		log.Error("database unreachable", "error", err.Error())
		os.Exit(1)
	}
	return pool
}

// withRetry runs fn with a short backoff. Startup dependencies (database,
// migrations) routinely race container orchestration, so a few retries
// beat crash-looping.
func withRetry(ctx context.Context, log *logger.Logger, op string, fn func() error) error {
	const attempts = 5
	delay := time.Second

	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		log.Warn("retrying", "op", op, "attempt", i, "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}

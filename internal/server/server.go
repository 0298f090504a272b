package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomid "github.com/labstack/echo/v4/middleware"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/open-dossier/archive/backend/internal/config"
	"github.com/open-dossier/archive/backend/internal/queue"
	mid "github.com/open-dossier/archive/backend/internal/server/middleware"
	"github.com/open-dossier/archive/backend/internal/util"
	"github.com/open-dossier/archive/backend/pkg/cache"
	"github.com/open-dossier/archive/backend/pkg/engine"
	pgstore "github.com/open-dossier/archive/backend/pkg/store/pgx"

	"github.com/open-dossier/archive/backend/pkg/logger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	cfg := config.Load()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runMigrations(cfg)

	conn, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	store := pgstore.NewArchiveStorage(conn)
	eng := engine.New(store, engine.Options{
		MaxGraphDepth: cfg.MaxGraphDepth,
		Quality:       cfg.Quality,
	})

	respCache := cache.New(nil)
	respCache.StartSweeper(ctx, cfg.SweepInterval)

	// The ingestion pipeline is a separate deployment; when its broker is
	// not configured the engine still serves, relying on TTL expiry alone.
	if util.GetEnv("RABBITMQ_HOST") != "" {
		que := queue.Init()
		defer que.Close()
		ch, err := que.Channel()
		if err != nil {
			logger.Fatal("Failed to open channel", "err", err)
		}
		if err := queue.SetupQueue(ch, cfg.EventQueue); err != nil {
			logger.Fatal("Failed to declare event queue", "queue", cfg.EventQueue, "err", err)
		}
		if err := queue.ConsumeInvalidations(ctx, ch, cfg.EventQueue, respCache); err != nil {
			logger.Fatal("Failed to start invalidation consumer", "err", err)
		}
	} else {
		logger.Warn("RABBITMQ_HOST not set, cache invalidation on writes is disabled")
	}

	app := &mid.App{
		DBConn: conn,
		Store:  store,
		Engine: eng,
		Cache:  respCache,
		Config: cfg,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(mid.RequestIDMiddleware())
	e.Use(echomid.CORS())
	e.Use(echomid.RequestLogger())
	e.Use(echomid.Recover())

	RegisterRoutes(e)

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func runMigrations(cfg *config.Config) {
	m, err := migrate.New("file://"+cfg.MigrationsDir, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to load migrations", "dir", cfg.MigrationsDir, "err", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("Failed to run migrations", "err", err)
	}
}

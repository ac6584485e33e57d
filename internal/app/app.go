package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/dsc-roster/internal/config"
	"github.com/aidar/dsc-roster/internal/handler"
	"github.com/aidar/dsc-roster/internal/logger"
	"github.com/aidar/dsc-roster/internal/middleware"
	"github.com/aidar/dsc-roster/internal/repository"
	"github.com/aidar/dsc-roster/internal/repository/memory"
	"github.com/aidar/dsc-roster/internal/repository/postgres"
	"github.com/aidar/dsc-roster/internal/service"
)

// App представляет сервис участников со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout),
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	var memberRepo repository.MemberRepository
	var pinger handler.Pinger

	switch a.config.Database.Storage {
	case config.StorageMemory:
		memberRepo = memory.NewMemberRepository()
		a.logger.Warn("Using in-memory storage, data will be lost on restart")
	default:
		if err := a.connectDB(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		memberRepo = postgres.NewMemberRepository(a.db)
		pinger = a.db
	}

	a.setupServer(memberRepo, pinger)

	a.logger.Info("Application initialized successfully", "storage", a.config.Database.Storage)
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer(memberRepo repository.MemberRepository, pinger handler.Pinger) {
	r := NewRouter(memberRepo, pinger, a.config.Server.Origins(), a.logger)

	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// NewRouter собирает сервисы, обработчики и маршруты API участников
func NewRouter(memberRepo repository.MemberRepository, pinger handler.Pinger, origins []string, log *slog.Logger) http.Handler {
	memberService := service.NewMemberService(memberRepo)
	clubService := service.NewClubService()

	memberHandler := handler.NewMemberHandler(memberService)
	clubHandler := handler.NewClubHandler(clubService)
	healthHandler := handler.NewHealthHandler(pinger, log)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORSMiddleware(origins))

	r.Get("/", clubHandler.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Get("/club-info", clubHandler.Info)

		r.Route("/team-members", func(r chi.Router) {
			r.Get("/", memberHandler.List)
			r.Post("/", memberHandler.Create)
			r.Get("/{id}", memberHandler.Get)
			r.Put("/{id}", memberHandler.Update)
			r.Delete("/{id}", memberHandler.Delete)
		})
	})

	return r
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// ShutdownTimeout время на завершение активных запросов при остановке
const ShutdownTimeout = 30 * time.Second

// Serve запускает HTTP сервер и блокируется до отмены ctx или ошибки сервера.
// После отмены ctx приложение останавливается с таймаутом ShutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()

	if err := a.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}

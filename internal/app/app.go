package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aidar/player-manager/internal/config"
	"github.com/aidar/player-manager/internal/handler"
	"github.com/aidar/player-manager/internal/middleware"
	"github.com/aidar/player-manager/internal/repository/httpapi"
	"github.com/aidar/player-manager/internal/service"
	"github.com/aidar/player-manager/internal/session"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config   *config.Config
	server   *http.Server
	sessions *session.Store
	logger   *slog.Logger

	stopSweeper context.CancelFunc
	sweeperDone sync.WaitGroup
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Хранилище сессий посетителей
	a.sessions = session.NewStore(a.config.Session.GetTTL())

	// Настраиваем HTTP сервер и роутинг
	if err := a.setupServer(); err != nil {
		return fmt.Errorf("failed to setup server: %w", err)
	}

	// Запускаем фоновую очистку истекших сессий
	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	a.stopSweeper = cancel
	a.sweeperDone.Add(1)
	go func() {
		defer a.sweeperDone.Done()
		a.sessions.Run(sweepCtx, a.config.Session.GetSweepInterval(), func(removed int) {
			a.logger.Info("Expired sessions removed", "count", removed)
		})
	}()

	a.logger.Info("Application initialized successfully", "players_api", a.config.PlayersAPI.URL)
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() error {
	// Инициализируем клиент удаленного API игроков
	httpClient := &http.Client{Timeout: a.config.PlayersAPI.GetTimeout()}
	playerRepo := httpapi.NewPlayerRepository(a.config.PlayersAPI.URL, httpClient)

	// Инициализируем слой сервисов (состояние формы)
	playerService := service.NewPlayerService(playerRepo, service.NewFormValidator())

	// Шаблоны страниц
	templates, err := handler.ParseTemplates()
	if err != nil {
		return err
	}

	// Инициализируем HTTP обработчики
	pageHandler := handler.NewPageHandler(playerService, templates, a.logger)

	// Middleware сессий (cookie с подписанным токеном)
	sessionMiddleware := middleware.SessionMiddleware(
		a.sessions,
		session.NewTokenIssuer(a.config.Session.Secret, a.config.Session.GetTTL()),
		middleware.CookieConfig{
			Name:   a.config.Session.CookieName,
			Secure: a.config.Session.CookieSecure,
			MaxAge: int(a.config.Session.GetTTL().Seconds()),
		},
		a.logger,
	)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		handler.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Страница и действия формы (требуют сессию)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)

		r.Get("/", pageHandler.Index)
		r.Post("/reload", pageHandler.Reload)
		r.Post("/select", pageHandler.Select)

		r.Route("/players", func(r chi.Router) {
			r.Post("/update", pageHandler.Update)
			r.Post("/delete", pageHandler.Delete)
			r.Post("/new", pageHandler.BeginCreate)
			r.Post("/cancel", pageHandler.CancelCreate)
			r.Post("/create", pageHandler.Create)
		})
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
	return nil
}

// Handler возвращает корневой HTTP обработчик (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Останавливаем очистку сессий
	if a.stopSweeper != nil {
		a.stopSweeper()
		a.sweeperDone.Wait()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}

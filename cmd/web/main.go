package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/player-manager/internal/app"
	"github.com/aidar/player-manager/internal/config"
)

func main() {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Не удалось создать приложение: %v", err)
	}

	// Инициализируем приложение (клиент API игроков, сессии, роутинг)
	if err := application.Initialize(context.Background()); err != nil {
		log.Fatalf("Не удалось инициализировать приложение: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Сервер может упасть сразу (например, занят порт), поэтому ждем и его ошибку
	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	fmt.Printf("Player Management System: http://%s:%s (API %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.PlayersAPI.URL)

	select {
	case <-sigChan:
		fmt.Println("\nОстановка сервера...")
	case err := <-serverErr:
		log.Printf("Ошибка сервера: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Printf("Не удалось корректно остановить сервер: %v", err)
		os.Exit(1)
	}

	fmt.Println("Сервер остановлен")
}

package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aidar/player-manager/internal/app"
	"github.com/aidar/player-manager/internal/config"
	"github.com/aidar/player-manager/internal/domain"
	"github.com/aidar/player-manager/internal/testutil/playersapi"
)

// TestEnvironment содержит все ресурсы необходимые для интеграционных тестов
type TestEnvironment struct {
	PlayersAPI *playersapi.Server
	App        *app.App
	BaseURL    string
}

// SetupTestEnvironment поднимает фейковый API игроков и запускает приложение
func SetupTestEnvironment(t *testing.T, players ...domain.Player) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	// Запускаем фейковый API игроков
	api := playersapi.New(players...)

	// Используем высокий порт для тестов чтобы избежать конфликтов
	testPort := "18080"
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: testPort,
			Host: "127.0.0.1",
		},
		PlayersAPI: config.PlayersAPIConfig{
			URL:            api.URL(),
			TimeoutSeconds: 5,
		},
		Session: config.SessionConfig{
			Secret:       "test-session-secret-for-integration-tests",
			TTLHours:     1,
			CookieName:   "player_session",
			SweepMinutes: 1,
		},
	}

	// Создаем и инициализируем приложение
	application, err := app.New(cfg)
	require.NoError(t, err, "Failed to create application")

	err = application.Initialize(ctx)
	require.NoError(t, err, "Failed to initialize application")

	// Запускаем сервер в фоне
	go func() {
		if err := application.Run(); err != nil && err != http.ErrServerClosed {
			t.Logf("Server error: %v", err)
		}
	}()

	return &TestEnvironment{
		PlayersAPI: api,
		App:        application,
		BaseURL:    fmt.Sprintf("http://%s:%s", cfg.Server.Host, testPort),
	}
}

// Cleanup очищает все тестовые ресурсы
func (te *TestEnvironment) Cleanup(t *testing.T) {
	t.Helper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if te.App != nil {
		_ = te.App.Shutdown(shutdownCtx)
	}

	if te.PlayersAPI != nil {
		te.PlayersAPI.Close()
	}
}

// NewBrowser создает HTTP клиент с cookie jar, ведущий себя как отдельный посетитель
func (te *TestEnvironment) NewBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar:     jar,
		Timeout: 10 * time.Second,
	}
}

// GetPage загружает страницу и возвращает HTML
func (te *TestEnvironment) GetPage(t *testing.T, browser *http.Client) string {
	t.Helper()

	resp, err := browser.Get(te.BaseURL + "/")
	require.NoError(t, err, "Failed to get page")
	return readBody(t, resp)
}

// Submit отправляет форму и следует редиректу обратно на страницу
func (te *TestEnvironment) Submit(t *testing.T, browser *http.Client, path string, values url.Values) string {
	t.Helper()

	resp, err := browser.PostForm(te.BaseURL+path, values)
	require.NoError(t, err, "Failed to submit form")
	require.Equal(t, "/", resp.Request.URL.Path, "Form action should redirect to the page")
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// WaitForHealthCheck ждет пока приложение станет доступным
func (te *TestEnvironment) WaitForHealthCheck(t *testing.T) {
	t.Helper()

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(te.BaseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatal("Application did not become healthy in time")
}

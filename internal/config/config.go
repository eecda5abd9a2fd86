package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server     ServerConfig     // Настройки HTTP сервера
	PlayersAPI PlayersAPIConfig // Настройки удаленного API игроков
	Session    SessionConfig    // Настройки сессий посетителей
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"3000"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// PlayersAPIConfig содержит настройки подключения к API игроков
type PlayersAPIConfig struct {
	URL            string `envconfig:"PLAYERS_API_URL" default:"http://localhost:8080/players"`
	TimeoutSeconds int    `envconfig:"PLAYERS_API_TIMEOUT_SECONDS" default:"10"`
}

// SessionConfig содержит настройки сессий и cookie
type SessionConfig struct {
	Secret       string `envconfig:"SESSION_SECRET" required:"true"`
	TTLHours     int    `envconfig:"SESSION_TTL_HOURS" default:"24"`
	CookieName   string `envconfig:"SESSION_COOKIE_NAME" default:"player_session"`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SweepMinutes int    `envconfig:"SESSION_SWEEP_MINUTES" default:"10"`
}

// GetTimeout возвращает таймаут запросов к API как time.Duration
func (p PlayersAPIConfig) GetTimeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// GetTTL возвращает время жизни сессии как time.Duration
func (s SessionConfig) GetTTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// GetSweepInterval возвращает период очистки истекших сессий
func (s SessionConfig) GetSweepInterval() time.Duration {
	return time.Duration(s.SweepMinutes) * time.Minute
}

// Validate проверяет значения, которые envconfig не может проверить сам
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	u, err := url.Parse(c.PlayersAPI.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("PLAYERS_API_URL must be an absolute URL, got %q", c.PlayersAPI.URL)
	}
	if c.PlayersAPI.TimeoutSeconds <= 0 {
		return fmt.Errorf("PLAYERS_API_TIMEOUT_SECONDS must be positive")
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.Session.SweepMinutes <= 0 {
		return fmt.Errorf("SESSION_SWEEP_MINUTES must be positive")
	}
	return nil
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Доменные ошибки
var (
	// ErrPlayerNotFound возвращается когда игрок отсутствует в списке или в удаленном API
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPlayerExists возвращается при попытке создать игрока с занятым именем
	ErrPlayerExists = errors.New("player already exists")

	// ErrInvalidPlayer возвращается когда данные игрока не прошли проверку
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrNoSelection возвращается при изменении или удалении без выбранного игрока
	ErrNoSelection = errors.New("no player selected")

	// ErrCreationInProgress возвращается при попытке выбрать, изменить или удалить игрока в режиме создания
	ErrCreationInProgress = errors.New("player creation in progress")

	// ErrNotCreating возвращается при отправке или отмене создания вне режима создания
	ErrNotCreating = errors.New("player creation not started")

	// ErrUpstream возвращается когда удаленный API ответил неожиданным статусом
	ErrUpstream = errors.New("players api error")

	// ErrUpstreamUnavailable возвращается когда удаленный API недоступен
	ErrUpstreamUnavailable = errors.New("players api unavailable")
)

// FieldError описывает ошибку одного поля формы
type FieldError struct {
	Field   string
	Message string
}

// ValidationError содержит все ошибки полей формы
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "invalid player: " + strings.Join(parts, "; ")
}

// Unwrap позволяет сравнивать ValidationError с ErrInvalidPlayer через errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrInvalidPlayer
}

// UpstreamError описывает неожиданный ответ удаленного API
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("players api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("players api returned status %d: %s", e.StatusCode, e.Body)
}

// Unwrap позволяет сравнивать UpstreamError с ErrUpstream через errors.Is
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aidar/player-manager/internal/domain"
)

// maxErrorBody ограничивает фрагмент тела ответа, попадающий в текст ошибки
const maxErrorBody = 512

// PlayerRepository реализует repository.PlayerRepository поверх удаленного HTTP API
type PlayerRepository struct {
	endpoint string
	client   *http.Client
}

// NewPlayerRepository создает клиент для коллекции игроков.
// endpoint - адрес коллекции, например http://localhost:8080/players
func NewPlayerRepository(endpoint string, client *http.Client) *PlayerRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &PlayerRepository{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   client,
	}
}

// List получает всех игроков (GET /players)
func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	body, err := r.do(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("failed to decode players: %w", err)
	}
	if players == nil {
		players = []domain.Player{}
	}

	return players, nil
}

// Create создает игрока (POST /players)
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	body, err := r.do(ctx, http.MethodPost, r.endpoint, player)
	if err != nil {
		return nil, err
	}

	return decodePlayer(body, player), nil
}

// Update обновляет игрока по имени (PUT /players/{name})
func (r *PlayerRepository) Update(ctx context.Context, name string, player *domain.Player) (*domain.Player, error) {
	body, err := r.do(ctx, http.MethodPut, r.playerURL(name), player)
	if err != nil {
		return nil, err
	}

	return decodePlayer(body, player), nil
}

// Delete удаляет игрока по имени (DELETE /players/{name}).
// Тело ответа с результатом удаления не используется.
func (r *PlayerRepository) Delete(ctx context.Context, name string) error {
	_, err := r.do(ctx, http.MethodDelete, r.playerURL(name), nil)
	return err
}

func (r *PlayerRepository) playerURL(name string) string {
	return r.endpoint + "/" + url.PathEscape(name)
}

// do выполняет запрос и возвращает тело успешного ответа
func (r *PlayerRepository) do(ctx context.Context, method, target string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode player: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstreamUnavailable, method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, statusError(resp.StatusCode, body)
}

// statusError преобразует код ответа API в доменную ошибку
func statusError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrPlayerNotFound
	case http.StatusConflict:
		return domain.ErrPlayerExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		msg := excerpt(body)
		if msg == "" {
			return domain.ErrInvalidPlayer
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidPlayer, msg)
	default:
		return &domain.UpstreamError{StatusCode: status, Body: excerpt(body)}
	}
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}

// decodePlayer разбирает игрока из ответа. Если API вернул не игрока
// (например, результат запроса к БД), используется отправленный игрок.
func decodePlayer(body []byte, sent *domain.Player) *domain.Player {
	var p domain.Player
	if err := json.Unmarshal(body, &p); err != nil || p.Name == "" {
		out := *sent
		return &out
	}
	return &p
}

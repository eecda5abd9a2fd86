package repository

import (
	"context"

	"github.com/aidar/player-manager/internal/domain"
)

// PlayerRepository определяет методы для работы с коллекцией игроков
type PlayerRepository interface {
	// List возвращает всех игроков
	List(ctx context.Context) ([]domain.Player, error)

	// Create создает нового игрока
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)

	// Update заменяет данные игрока с указанным именем (имя тоже может измениться)
	Update(ctx context.Context, name string, player *domain.Player) (*domain.Player, error)

	// Delete удаляет игрока по имени
	Delete(ctx context.Context, name string) error
}

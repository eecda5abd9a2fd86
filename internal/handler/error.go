package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aidar/player-manager/internal/domain"
	"github.com/aidar/player-manager/internal/session"
)

// ErrorMessage преобразует доменные ошибки в текст для пользователя.
// Второе значение false означает непредвиденную ошибку, которую нужно залогировать.
func ErrorMessage(err error) (string, bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		parts := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			parts = append(parts, "Player "+f.Field+" "+f.Message)
		}
		return strings.Join(parts, ". ") + ".", true
	case errors.Is(err, domain.ErrPlayerNotFound):
		return "That player no longer exists. The list has been reloaded.", true
	case errors.Is(err, domain.ErrPlayerExists):
		return "A player with that name already exists.", true
	case errors.Is(err, domain.ErrInvalidPlayer):
		return "The players service rejected the player data.", true
	case errors.Is(err, domain.ErrNoSelection):
		return "Select a player first.", true
	case errors.Is(err, domain.ErrCreationInProgress):
		return "Finish or cancel creating the new player first.", true
	case errors.Is(err, domain.ErrNotCreating):
		return "No player is being created.", true
	case errors.Is(err, domain.ErrUpstreamUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "The players service is unreachable. Please try again.", false
	default:
		return "Something went wrong while talking to the players service.", false
	}
}

// HandleError кладет сообщение об ошибке во flash сессии и логирует непредвиденные ошибки
func HandleError(logger *slog.Logger, sess *session.Session, err error) {
	msg, expected := ErrorMessage(err)
	if !expected {
		logger.Error("Player form action failed", "error", err)
	} else {
		logger.Debug("Player form action rejected", "error", err)
	}
	sess.SetFlash(session.FlashError, msg)
}

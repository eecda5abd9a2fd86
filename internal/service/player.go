package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidar/player-manager/internal/domain"
	"github.com/aidar/player-manager/internal/repository"
)

// PlayerService drives the player form: selection, edit and create modes,
// and the remote calls behind each button.
type PlayerService struct {
	playerRepo repository.PlayerRepository
	validator  *FormValidator
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(playerRepo repository.PlayerRepository, validator *FormValidator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// Load fetches all players and resets the form to the first one.
// This is what a fresh page view does.
func (s *PlayerService) Load(ctx context.Context, state *domain.FormState) error {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	state.Players = players
	state.Creating = false
	state.Loaded = true
	selectPlayer(state)
	return nil
}

// Refresh replaces the cached list without touching the selection or the form.
// On failure the cached list is stale, so the next page view loads again.
func (s *PlayerService) Refresh(ctx context.Context, state *domain.FormState) error {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		state.Loaded = false
		return fmt.Errorf("failed to refresh players: %w", err)
	}

	state.Players = players
	return nil
}

// Select shows the named player in the form
func (s *PlayerService) Select(state *domain.FormState, name string) error {
	if state.Creating {
		return domain.ErrCreationInProgress
	}

	player, ok := state.Find(name)
	if !ok {
		// The page was rendered from a stale list
		state.Loaded = false
		return domain.ErrPlayerNotFound
	}

	state.Selected = player.Name
	state.Form = domain.FormFromPlayer(player)
	return nil
}

// Edit stores the values typed into the form
func (s *PlayerService) Edit(state *domain.FormState, form domain.PlayerForm) {
	state.Form = form
}

// Update sends the form as the new data of the selected player
func (s *PlayerService) Update(ctx context.Context, state *domain.FormState, form domain.PlayerForm) (*domain.Player, error) {
	s.Edit(state, form)

	if state.Creating {
		return nil, domain.ErrCreationInProgress
	}
	if state.Selected == "" {
		return nil, domain.ErrNoSelection
	}

	player, err := s.validator.Player(form)
	if err != nil {
		return nil, err
	}

	// The selected name is the key, the body may carry a new name
	updated, err := s.playerRepo.Update(ctx, state.Selected, player)
	if err != nil {
		markStale(state, err)
		return nil, fmt.Errorf("failed to update player %q: %w", state.Selected, err)
	}

	previous := state.Selected
	if err := s.Refresh(ctx, state); err != nil {
		return updated, err
	}
	selectPlayer(state, updated.Name, previous)

	return updated, nil
}

// Delete removes the selected player and goes back to the first one
func (s *PlayerService) Delete(ctx context.Context, state *domain.FormState) error {
	if state.Creating {
		return domain.ErrCreationInProgress
	}
	if state.Selected == "" {
		return domain.ErrNoSelection
	}

	if err := s.playerRepo.Delete(ctx, state.Selected); err != nil {
		markStale(state, err)
		return fmt.Errorf("failed to delete player %q: %w", state.Selected, err)
	}

	return s.Load(ctx, state)
}

// BeginCreate clears the form and switches to create mode
func (s *PlayerService) BeginCreate(state *domain.FormState) {
	state.Form = domain.PlayerForm{}
	state.Creating = true
}

// CancelCreate leaves create mode and shows the selected player again
func (s *PlayerService) CancelCreate(state *domain.FormState) error {
	if !state.Creating {
		return domain.ErrNotCreating
	}

	state.Creating = false
	state.Form = domain.PlayerForm{}
	if player, ok := state.Find(state.Selected); ok {
		state.Form = domain.FormFromPlayer(player)
	}
	return nil
}

// Create sends the form as a new player and selects it
func (s *PlayerService) Create(ctx context.Context, state *domain.FormState, form domain.PlayerForm) (*domain.Player, error) {
	s.Edit(state, form)

	if !state.Creating {
		return nil, domain.ErrNotCreating
	}

	player, err := s.validator.Player(form)
	if err != nil {
		return nil, err
	}

	created, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player %q: %w", player.Name, err)
	}

	state.Creating = false
	if err := s.Refresh(ctx, state); err != nil {
		state.Selected = created.Name
		state.Form = domain.FormFromPlayer(*created)
		return created, err
	}
	selectPlayer(state, created.Name)

	return created, nil
}

// markStale forces a reload on the next page view when the remote list
// no longer matches the cached copy
func markStale(state *domain.FormState, err error) {
	if errors.Is(err, domain.ErrPlayerNotFound) {
		state.Loaded = false
	}
}

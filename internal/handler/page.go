package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aidar/player-manager/internal/domain"
	"github.com/aidar/player-manager/internal/middleware"
	"github.com/aidar/player-manager/internal/service"
	"github.com/aidar/player-manager/internal/session"
)

const pageTitle = "Player Management System"

// PageHandler обрабатывает страницу управления игроками и действия формы
type PageHandler struct {
	playerService *service.PlayerService
	templates     *Templates
	logger        *slog.Logger
}

// NewPageHandler создает новый PageHandler
func NewPageHandler(playerService *service.PlayerService, templates *Templates, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		playerService: playerService,
		templates:     templates,
		logger:        logger,
	}
}

// pageData содержит данные для рендеринга страницы
type pageData struct {
	Title        string
	Players      []domain.Player
	Selected     string
	Form         domain.PlayerForm
	Creating     bool
	HasSelection bool
	Flash        *session.Flash
	Hands        []string
}

func newPageData(state *domain.FormState) pageData {
	hands := make([]string, 0, len(domain.Hands()))
	for _, h := range domain.Hands() {
		hands = append(hands, string(h))
	}

	return pageData{
		Title:        pageTitle,
		Players:      append([]domain.Player(nil), state.Players...),
		Selected:     state.Selected,
		Form:         state.Form,
		Creating:     state.Creating,
		HasSelection: state.HasSelection(),
		Hands:        hands,
	}
}

// Index обрабатывает GET /
// Первый просмотр в сессии загружает список игроков
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}

	flash := sess.PopFlash()

	var (
		data    pageData
		loadErr error
	)
	sess.Do(func(state *domain.FormState) {
		if !state.Loaded {
			loadErr = h.playerService.Load(r.Context(), state)
		}
		data = newPageData(state)
	})

	if loadErr != nil {
		msg, expected := ErrorMessage(loadErr)
		if !expected {
			h.logger.Error("Failed to load players", "error", loadErr)
		}
		flash = &session.Flash{Kind: session.FlashError, Message: msg}
	}
	data.Flash = flash

	html, err := h.templates.Execute("index.html", data)
	if err != nil {
		h.logger.Error("Failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	RespondWithHTML(w, r, http.StatusOK, html)
}

// Reload обрабатывает POST /reload
func (h *PageHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(ctx context.Context, state *domain.FormState) (string, error) {
		return "", h.playerService.Load(ctx, state)
	})
}

// Select обрабатывает POST /select
func (h *PageHandler) Select(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("player_select")
	h.act(w, r, func(_ context.Context, state *domain.FormState) (string, error) {
		if name == "" {
			return "", domain.ErrNoSelection
		}
		return "", h.playerService.Select(state, name)
	})
}

// Update обрабатывает POST /players/update
func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	form := parsePlayerForm(r)
	h.act(w, r, func(ctx context.Context, state *domain.FormState) (string, error) {
		updated, err := h.playerService.Update(ctx, state, form)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %s updated.", updated.Name), nil
	})
}

// Delete обрабатывает POST /players/delete
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(ctx context.Context, state *domain.FormState) (string, error) {
		name := state.Selected
		if err := h.playerService.Delete(ctx, state); err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %s deleted.", name), nil
	})
}

// BeginCreate обрабатывает POST /players/new
func (h *PageHandler) BeginCreate(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(_ context.Context, state *domain.FormState) (string, error) {
		h.playerService.BeginCreate(state)
		return "", nil
	})
}

// CancelCreate обрабатывает POST /players/cancel
func (h *PageHandler) CancelCreate(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(_ context.Context, state *domain.FormState) (string, error) {
		return "", h.playerService.CancelCreate(state)
	})
}

// Create обрабатывает POST /players/create
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := parsePlayerForm(r)
	h.act(w, r, func(ctx context.Context, state *domain.FormState) (string, error) {
		created, err := h.playerService.Create(ctx, state, form)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %s created.", created.Name), nil
	})
}

// act выполняет действие над состоянием сессии, сохраняет результат во flash
// и перенаправляет обратно на страницу
func (h *PageHandler) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, state *domain.FormState) (string, error)) {
	sess := middleware.GetSessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}

	var (
		msg string
		err error
	)
	sess.Do(func(state *domain.FormState) {
		msg, err = fn(r.Context(), state)
	})

	switch {
	case err != nil:
		HandleError(h.logger, sess, err)
	case msg != "":
		sess.SetFlash(session.FlashInfo, msg)
	}

	RedirectToPage(w, r)
}

// parsePlayerForm читает поля формы игрока из тела запроса
func parsePlayerForm(r *http.Request) domain.PlayerForm {
	field := func(name string) string {
		return strings.TrimSpace(r.PostFormValue(name))
	}
	return domain.PlayerForm{
		Name:   field("name"),
		City:   field("city"),
		Height: field("height"),
		Weight: field("weight"),
		Throws: field("throws"),
		Bats:   field("bats"),
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aidar/player-manager/internal/session"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

// SessionKey ключ контекста для сессии посетителя
const SessionKey ContextKey = "session"

// CookieConfig описывает параметры cookie сессии
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int // В секундах
}

// SessionMiddleware создает middleware, которое находит сессию посетителя по cookie
// или заводит новую, если cookie нет, токен невалиден или сессия истекла
func SessionMiddleware(store *session.Store, tokens *session.TokenIssuer, cookie CookieConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Пытаемся восстановить существующую сессию
			if c, err := r.Cookie(cookie.Name); err == nil {
				if id, err := tokens.Parse(c.Value); err == nil {
					if sess, ok := store.Get(id); ok {
						next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
						return
					}
				}
			}

			// Создаем новую сессию и выдаем cookie
			sess := store.Create()
			token, err := tokens.Issue(sess.ID)
			if err != nil {
				store.Delete(sess.ID)
				logger.Error("Failed to issue session token", "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookie.Name,
				Value:    token,
				Path:     "/",
				MaxAge:   cookie.MaxAge,
				HttpOnly: true,
				Secure:   cookie.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSessionFromContext извлекает сессию из контекста
func GetSessionFromContext(ctx context.Context) *session.Session {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

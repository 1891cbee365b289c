// Package middleware содержит HTTP middleware: аутентификация по
// заголовку X-User-ID, CORS и сбор метрик запросов
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/postbureau/PB-MeetingService/internal/api/handlers"
)

type identityKey struct{}

// Identity данные вызывающего, извлечённые из заголовка X-User-ID
type Identity struct {
	TelegramID int64
	IsAdmin    bool
}

// IdentityFromContext возвращает identity вызывающего, если запрос
// прошёл через Auth middleware
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// WithIdentity кладёт identity в контекст (используется в тестах handlers)
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// NewAuth возвращает middleware аутентификации.
// Запрос обязан нести заголовок X-User-ID с Telegram ID вызывающего;
// администраторы определяются по настроенному списку идентификаторов
func NewAuth(adminIDs []int64) func(http.Handler) http.Handler {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
				return
			}

			telegramID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || telegramID <= 0 {
				handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
				return
			}

			_, isAdmin := admins[telegramID]
			ctx := WithIdentity(r.Context(), Identity{TelegramID: telegramID, IsAdmin: isAdmin})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов.
// Вешается после Auth middleware
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok || !id.IsAdmin {
			handlers.RespondForbidden(w, "требуются права администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"massageshop/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация администратора"

// SessionValidator проверяет, что токен соответствует живой сессии
type SessionValidator interface {
	Validate(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionAuth защищает админские маршруты: ожидает заголовок
// Authorization: Bearer <token> с токеном живой сессии.
func SessionAuth(validator SessionValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if err := validator.Validate(r.Context(), token); err != nil {
				logger.Warn("%s %s - Invalid session token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

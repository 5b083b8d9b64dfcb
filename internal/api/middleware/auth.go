package middleware

import (
	"net/http"
	"strconv"

	"github.com/avlnk/StudioBookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет заголовок X-User-ID у административных запросов.
// Управление учетными записями живет во внешнем сервисе, здесь
// достаточно присутствия корректного идентификатора.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondForbidden(w, "missing user identity")
			return
		}

		if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 {
			handlers.RespondForbidden(w, "invalid user identity")
			return
		}

		next.ServeHTTP(w, r)
	})
}

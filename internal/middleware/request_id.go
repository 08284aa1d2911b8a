package middleware

import (
	"net/http"

	"blogapi/internal/reqctx"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID кладёт идентификатор запроса в контекст и в ответный заголовок.
// Если клиент прислал свой X-Request-Id — используем его.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}

		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// GetRequestID возвращает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// RequestID присваивает запросу идентификатор (или берёт переданный клиентом)
// и пишет строку лога по завершении
func RequestID(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

			if rec.status >= http.StatusInternalServerError {
				logger.Warn("%s %s - request_id=%s status=%d duration=%s", r.Method, r.URL.Path, id, rec.status, time.Since(start))
				return
			}
			logger.Info("%s %s - request_id=%s status=%d duration=%s", r.Method, r.URL.Path, id, rec.status, time.Since(start))
		})
	}
}

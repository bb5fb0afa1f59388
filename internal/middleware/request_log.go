package middleware

import (
	"net/http"
	"time"

	"pet-explorer/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog registra una línea por request. Va después de chi RequestID.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if uid, ok := SessionID(r.Context()); ok {
				fields["user_id"] = uid
			}

			if status >= 500 {
				log.Error("request", fields)
				return
			}
			log.Info("request", fields)
		})
	}
}

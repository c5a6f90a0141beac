package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"bielbarbosa.dev/internal/logging"
)

// Logger attaches a log attribute set to the request context and writes one
// line per finished request, leveled by response status.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		ctx := logging.ContextWithAttrs(r.Context())
		logging.AddAttributes(ctx, map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"proto":  r.Proto,
		})
		if reqID := chimw.GetReqID(ctx); reqID != "" {
			logging.AddAttribute(ctx, "request_id", reqID)
		}

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logging.AddAttributes(ctx, map[string]any{
			"status":        status,
			"bytes_written": ww.BytesWritten(),
			"duration":      time.Since(start),
		})
		slog.Log(ctx, logging.HTTPStatusLevel(status), http.StatusText(status))
	})
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bielbarbosa.dev/internal/logging"
)

// Recovery turns a handler panic into a JSON 500 response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			ctx := r.Context()
			logging.AddError(ctx, fmt.Errorf("panic: %v", rec))
			slog.ErrorContext(ctx, "recovered from panic", "stack", string(debug.Stack()))

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"internal","message":"server error"}` + "\n"))
		}()
		next.ServeHTTP(w, r)
	})
}

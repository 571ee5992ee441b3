package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/blogem/sentiment-service/apierrors"
	"github.com/blogem/sentiment-service/reqctx"
)

// Recovery converts a panic in a handler into a generic 500 JSON response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("panic recovered",
						"error", rec,
						"stack_trace", string(debug.Stack()),
						"request_id", reqctx.GetRequestID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
					)

					if err := apierrors.WriteError(w, apierrors.NewInternalError()); err != nil {
						logger.Error("failed to write response", "error", err, "request_id", reqctx.GetRequestID(r.Context()))
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

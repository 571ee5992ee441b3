package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/blogem/sentiment-service/reqctx"
)

// RequestIDHeader is the header carrying the request ID in both directions
const RequestIDHeader = "X-Request-Id"

// RequestID stores a request ID in the context and echoes it in the response.
// A caller-supplied ID is kept only if it is a valid UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := reqctx.SetRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"context"
	"net/http"
	"time"
)

// withTimeout puts a deadline of d on the request context. It never writes
// to the response: a handler that sees context.DeadlineExceeded reports it
// through writeError, which answers 504.
func withTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/revanthkumar92/quantara/pkg/logger"
)

// Recovery middleware converts handler panics into 500 responses
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic while handling request",
						fmt.Errorf("%v", rec),
						"method", r.Method,
						"path", r.URL.Path,
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

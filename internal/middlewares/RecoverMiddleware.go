package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

// RecoverMiddleware turns handler panics into 500 error responses. It must
// run inside LoggingMiddleware so the request id is known.
func RecoverMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logging.Logger.Errorw("recovering from handler panic",
						"requestId", GetRequestId(r.Context()),
						"path", r.URL.Path,
						"panic", recovered,
					)
					utils.HandleHttpError(w, fmt.Errorf("handler panicked: %v", recovered))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

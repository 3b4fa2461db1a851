package middlewares

import (
	"context"
	"net/http"

	"github.com/The127/ioc"
	"github.com/gorilla/mux"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
)

type scopeKey struct{}

// ScopeMiddleware gives every request its own dependency scope.
func ScopeMiddleware(dp *ioc.DependencyProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := dp.NewScope()
			defer func() {
				if err := scope.Close(); err != nil {
					logging.Logger.Warnw("closing request scope",
						"requestId", GetRequestId(r.Context()),
						"error", err,
					)
				}
			}()

			next.ServeHTTP(w, r.WithContext(ContextWithScope(r.Context(), scope)))
		})
	}
}

func GetScope(ctx context.Context) *ioc.DependencyProvider {
	scope, ok := ctx.Value(scopeKey{}).(*ioc.DependencyProvider)
	if !ok {
		panic("request context carries no dependency scope")
	}
	return scope
}

func ContextWithScope(ctx context.Context, scope *ioc.DependencyProvider) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	gh "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/handlers"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/middlewares"
)

func NewRouter(dp *ioc.DependencyProvider, serverConfig config.ServerConfig) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	r.Use(middlewares.LoggingMiddleware())
	r.Use(middlewares.RecoverMiddleware())
	r.Use(middlewares.ScopeMiddleware(dp))

	r.HandleFunc("/health", handlers.ApplicationHealth).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/metrics", handlers.PrometheusMetrics).Methods(http.MethodGet, http.MethodOptions)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	apiRouter.Use(gh.CORS(
		gh.AllowedOrigins(serverConfig.AllowedOrigins),
		gh.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gh.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gh.AllowCredentials(),
		gh.MaxAge(3600),
	))

	apiRouter.HandleFunc("/password-strength", handlers.EvaluatePassword).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/password-strength/verify", handlers.VerifyPassword).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/password-strength/levels", handlers.ListStrengthLevels).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// Serve starts listening in the background and returns the server so the
// caller can shut it down.
func Serve(dp *ioc.DependencyProvider, serverConfig config.ServerConfig) *http.Server {
	addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)
	logging.Logger.Infof("running server at %s", addr)
	srv := &http.Server{
		Handler:           NewRouter(dp, serverConfig),
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go serve(srv)

	return srv
}

func Shutdown(ctx context.Context, srv *http.Server) error {
	err := srv.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

func serve(srv *http.Server) {
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(fmt.Errorf("error while running server: %w", err))
	}
}

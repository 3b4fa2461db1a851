package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/middlewares"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/services/keyValue"
	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

const healthCheckKey = "health-check"

type HealthResponseDto struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// ApplicationHealth reports whether the process and its evaluation cache are
// usable. A failing cache answers 503.
// @Summary     Health check
// @Tags        Monitoring
// @Produce     json
// @Success     200 {object} HealthResponseDto
// @Failure     503 {object} HealthResponseDto
// @Router      /health [get]
func ApplicationHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scope := middlewares.GetScope(ctx)
	store := ioc.GetDependency[keyValue.Store](scope)

	response := HealthResponseDto{Status: "ok", Cache: "ok"}
	status := http.StatusOK

	err := checkStore(ctx, store)
	if err != nil {
		logging.Logger.Warnw("health check failed",
			"requestId", middlewares.GetRequestId(ctx),
			"error", err,
		)
		response = HealthResponseDto{Status: "degraded", Cache: "unavailable"}
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.Logger.Warnw("writing health response", "error", err)
	}
}

// checkStore writes, reads back and removes a marker key.
func checkStore(ctx context.Context, store keyValue.Store) error {
	marker := time.Now().UTC().Format(time.RFC3339Nano)

	err := store.Set(ctx, healthCheckKey, marker, keyValue.WithExpiration(time.Minute))
	if err != nil {
		return fmt.Errorf("writing marker: %w", err)
	}

	value, err := store.Get(ctx, healthCheckKey)
	if err != nil {
		return fmt.Errorf("reading marker: %w", err)
	}
	if value != marker {
		return fmt.Errorf("marker read back %q, wrote %q", value, marker)
	}

	err = store.Delete(ctx, healthCheckKey)
	if err != nil {
		return fmt.Errorf("removing marker: %w", err)
	}

	return nil
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.HandleHttpError(w, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, utils.ErrResourceNotFound))
}

// PrometheusMetrics proxies the promhttp handler.
// @Summary     Prometheus metrics
// @Description Exposes Prometheus metrics in text exposition format.
// @Tags        Monitoring
// @Produce     plain
// @Success     200 {string} string "Prometheus exposition format (text/plain; version=0.0.4)"
// @Router      /metrics [get]
func PrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

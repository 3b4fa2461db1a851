package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
)

const RequestIdHeader = "X-Request-Id"

type requestIdKeyType string

const RequestIdKey requestIdKeyType = "requestId"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs method, path, status and duration. Bodies are never
// logged since they carry passwords.
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := r.Header.Get(RequestIdHeader)
			if _, err := uuid.Parse(requestId); err != nil {
				requestId = uuid.NewString()
			}
			w.Header().Set(RequestIdHeader, requestId)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			r = r.WithContext(context.WithValue(r.Context(), RequestIdKey, requestId))
			next.ServeHTTP(recorder, r)

			logging.Logger.Infow("request",
				"requestId", requestId,
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start),
			)
		})
	}
}

func GetRequestId(ctx context.Context) string {
	requestId, _ := ctx.Value(RequestIdKey).(string)
	return requestId
}

package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/skycruzer/fleet-management-v2-sub013/utils"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareAssignsRequestId(t *testing.T) {
	t.Parallel()

	// arrange
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestId(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))
	recorder := httptest.NewRecorder()

	// act
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	// assert
	require.Equal(t, http.StatusTeapot, recorder.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, recorder.Header().Get(RequestIdHeader))
}

func TestLoggingMiddlewareKeepsValidRequestId(t *testing.T) {
	t.Parallel()

	// arrange
	requestId := uuid.NewString()
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set(RequestIdHeader, requestId)
	recorder := httptest.NewRecorder()

	// act
	handler.ServeHTTP(recorder, request)

	// assert
	require.Equal(t, requestId, recorder.Header().Get(RequestIdHeader))
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()

	// arrange
	handler := RecoverMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	recorder := httptest.NewRecorder()

	// act
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	// assert
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response utils.ErrorResponseDto
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, http.StatusInternalServerError, response.Status)
}

func TestRecoverMiddlewareSeesRequestId(t *testing.T) {
	t.Parallel()

	// arrange
	var seen string
	r := mux.NewRouter()
	r.Use(LoggingMiddleware())
	r.Use(RecoverMiddleware())
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				seen = GetRequestId(r.Context())
			}()
			next.ServeHTTP(w, r)
		})
	})
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	recorder := httptest.NewRecorder()

	// act
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	// assert
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.NotEmpty(t, seen)
	require.Equal(t, seen, recorder.Header().Get(RequestIdHeader))
}

type greeter struct {
	name string
}

func TestScopeMiddlewareProvidesScope(t *testing.T) {
	t.Parallel()

	// arrange
	dc := ioc.NewDependencyCollection()
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) *greeter {
		return &greeter{name: "fleet"}
	})
	dp := dc.BuildProvider()

	var name string
	r := mux.NewRouter()
	r.Use(ScopeMiddleware(dp))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		name = ioc.GetDependency[*greeter](GetScope(r.Context())).name
	})

	// act
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// assert
	require.Equal(t, "fleet", name)
}

func TestGetScopePanicsWithoutScope(t *testing.T) {
	t.Parallel()

	// act & assert
	require.PanicsWithValue(t, "request context carries no dependency scope", func() {
		GetScope(context.Background())
	})
}

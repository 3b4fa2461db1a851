package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
)

var ErrResourceNotFound = errors.New("not found")

var ErrHttpBadRequest = errors.New("bad request")
var ErrPasswordRejected = fmt.Errorf("password does not meet the requirements: %w", ErrHttpBadRequest)

type ErrorResponseDto struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// HandleHttpError writes err as an ErrorResponseDto. Errors that wrap none
// of the sentinels are logged and reported as 500, with the message hidden
// in production.
func HandleHttpError(w http.ResponseWriter, err error) {
	response := ErrorResponseDto{
		Error: err.Error(),
	}

	switch {
	case errors.Is(err, ErrHttpBadRequest):
		response.Status = http.StatusBadRequest

	case errors.Is(err, ErrResourceNotFound):
		response.Status = http.StatusNotFound

	default:
		response.Status = http.StatusInternalServerError
		logging.Logger.Errorw("internal error", "error", err)
		if config.IsProduction() {
			response.Error = http.StatusText(http.StatusInternalServerError)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(response.Status)

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.Logger.Warnw("writing error response", "error", err)
	}
}

// PanicOnError is meant for deferred close calls at process edges.
func PanicOnError(f func() error, msg string) {
	err := f()
	if err != nil {
		logging.Logger.Fatalf("%s: %v", msg, err)
	}
}

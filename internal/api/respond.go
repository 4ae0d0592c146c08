package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps service errors to HTTP status codes. Anything unrecognised is
// an upstream failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, assign.ErrInvalidDraft):
		return http.StatusBadRequest
	case errors.Is(err, assign.ErrUnknownEmployee):
		return http.StatusNotFound
	case errors.Is(err, assign.ErrNoRoster):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

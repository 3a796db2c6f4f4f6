package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adventbox/daybox/internal/shared"
)

// errorBody is the JSON error envelope. Status repeats the HTTP status
// code as a number so browser-less clients can route on it.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, shared.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrorInvalidToken),
		errors.Is(err, shared.ErrorInvalidAuthHeaderFormat),
		errors.Is(err, shared.ErrorInvalidLoginPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// do not leak internals
		message = http.StatusText(http.StatusInternalServerError)
	}

	writeJSON(w, status, errorBody{Message: message, Status: status})
}

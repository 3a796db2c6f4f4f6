package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-success response from the service. Message and
// Status carry the server's own wording unchanged; the error view shows
// them verbatim.
type APIError struct {
	Message string
	Status  string
}

func (e *APIError) Error() string {
	if e.Status == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (status %s)", e.Message, e.Status)
}

// apiErrorBody matches the failure contract {message, status} where
// status may arrive as a number or a string.
type apiErrorBody struct {
	Message string          `json:"message"`
	Status  json.RawMessage `json:"status"`
}

func (b apiErrorBody) statusText() string {
	if len(b.Status) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Status, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(b.Status))
}

package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the uniform error envelope for every failure the gateway
// reports. Message carries the underlying cause on internal errors only.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondError sends a JSON error response with the given message and status code.
func RespondError(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// RespondInternalError sends the 500 envelope, exposing the cause in the
// message field as the API contract requires.
func RespondInternalError(w http.ResponseWriter, cause string) {
	RespondJSON(w, ErrorResponse{Error: "Internal server error", Message: cause}, http.StatusInternalServerError)
}

package shared

import (
	"encoding/json"
	"net/http"

	"github.com/worldhappiness/api/internal/platform/logger"
)

// ErrorResponse is the flat error body every failed request receives.
// The message comes from the condition table; internal detail never
// reaches the client.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard error body with the given status
// code and message. The request-scoped logger already carries the trace
// ID, method and path.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   true,
		Message: message,
	})
}

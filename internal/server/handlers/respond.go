package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// wireResponse is the CTFd-compatible success framing.
type wireResponse struct {
	Data    any  `json:"data"`
	Success bool `json:"success"`
}

// wireError is the CTFd-compatible failure framing.
type wireError struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Success bool     `json:"success"`
}

// sendData wraps the payload in the success envelope.
func sendData(w http.ResponseWriter, logger *slog.Logger, statusCode int, data any) {
	sendJSON(w, logger, statusCode, wireResponse{Success: true, Data: data})
}

// sendErrors returns a failure envelope with human-readable error strings.
func sendErrors(w http.ResponseWriter, logger *slog.Logger, statusCode int, errs ...string) {
	sendJSON(w, logger, statusCode, wireError{Success: false, Errors: errs})
}

func sendJSON(w http.ResponseWriter, logger *slog.Logger, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// userFrom extracts the authenticated user id and name from the request
// context, as placed there by the auth middleware. A zero id means the
// request is anonymous.
func userFrom(r *http.Request) (int, string) {
	id, _ := r.Context().Value(UserIDKey).(int)
	name, _ := r.Context().Value(UserNameKey).(string)
	return id, name
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/tutor"
)

// statusFor maps stable error codes to HTTP statuses. Provider failures
// surface as gateway errors: the upstream model, not this server, failed.
func statusFor(code string) int {
	switch code {
	case "invalid_input":
		return http.StatusBadRequest
	case "session_not_found":
		return http.StatusNotFound
	case "provider_rate_limited":
		return http.StatusTooManyRequests
	case "provider_timeout":
		return http.StatusGatewayTimeout
	case "provider_auth", "provider_quota", "provider_error":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeNotFound renders a 404 with the standard error envelope for
// resources outside the tutor error taxonomy (learning paths).
func writeNotFound(w http.ResponseWriter, r *http.Request, message string) {
	logger.FromContext(r.Context()).Warn("request rejected: %s", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    "not_found",
			"message": message,
		},
	})
}

// writeError renders an error as the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := tutor.ErrorCode(err)
	status := statusFor(code)

	log := logger.FromContext(r.Context())
	if status >= 500 {
		log.Error("request failed: %v", err)
	} else {
		log.Warn("request rejected: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": err.Error(),
		},
	})
}

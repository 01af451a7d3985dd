// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/openuno/uno-service/internal/auth"
	"github.com/openuno/uno-service/internal/engine"
)

// extractTokenFromCookie extracts the auth_token value from a "Cookie" header,
// or returns empty if not found.
func extractTokenFromCookie(cookieHeader string) string {
	parts := strings.Split(cookieHeader, "auth_token=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

// authedUser resolves the requesting player from the auth_token cookie.
func authedUser(r *http.Request) (uuid.UUID, error) {
	token := extractTokenFromCookie(r.Header.Get("Cookie"))
	if token == "" {
		return uuid.Nil, errors.New("missing auth token")
	}
	userIDStr, err := auth.AuthenticateJWT(token)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(userIDStr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeEngineError maps an *engine.Error onto the HTTP response using its
// embedded status code; anything else becomes a 500.
func writeEngineError(w http.ResponseWriter, err *engine.Error) {
	writeJSON(w, err.StatusCode, map[string]interface{}{
		"message":    err.Message,
		"statusCode": err.StatusCode,
		"code":       err.Code,
	})
}

package endpoints

import (
	"encoding/json"
	"net/http"
	"time"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError writes the standard error body used across the API.
func respondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	respondWithJSON(w, code, map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    code,
		"error":     http.StatusText(code),
		"message":   message,
		"path":      r.URL.Path,
	})
}

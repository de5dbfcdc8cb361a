package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError emits an {"error": msg} body so middleware rejections
// look the same as handler errors.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

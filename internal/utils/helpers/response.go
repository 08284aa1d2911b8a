package helpers

import (
	"encoding/json"
	"net/http"
)

// JSON пишет тело ответа как есть, без обёртки.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

// Error пишет тело вида {"error": "..."}.
func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, map[string]string{"error": errMsg})
}

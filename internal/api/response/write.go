package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Success writes a 200 response with a SUCCESS body
func Success(w http.ResponseWriter, data any) {
	if data == nil {
		data = OK
	}
	JSON(w, http.StatusOK, data)
}

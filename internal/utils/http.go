package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CemWebDev/python-todo-backend/models"
)

// WriteJSON encodes data and writes it with statusCode and a JSON
// Content-Type. When encoding fails nothing has been sent yet, so a plain 500
// is written instead and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		WriteError(w, "Internal Server Error", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteError writes the {"detail": ...} error body used by every endpoint.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	body, _ := json.Marshal(models.ErrorResponse{Detail: detail})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

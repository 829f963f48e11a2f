package handlers

import (
	"net/http"

	"crmchat-backend/internal/models"
)

// Health reports liveness only; it does not touch the completion API.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}

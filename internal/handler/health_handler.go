package handler

import (
	"net/http"

	"fashionhub/internal/model"

	"github.com/rs/zerolog"
)

// Health returns the handler for GET /api/health requests.
func Health(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.HealthResponse{
			Status:  "OK",
			Message: "FashionHub API is running",
		}, logger)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sakay-router/internal/geocoding"
	"sakay-router/internal/models"
	"sakay-router/internal/routing"
	"sakay-router/internal/transit"
)

// Handler provides common handler utilities and dependencies
type Handler struct {
	Graph      *transit.Graph
	Pathfinder *routing.Pathfinder
	Gateway    geocoding.Gateway
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// handleValidationError handles 400 errors
func (h *Handler) handleValidationError(w http.ResponseWriter, message string) {
	h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// parseCoords reads a lat/lng pair from query parameters
func parseCoords(r *http.Request, latKey, lngKey string) (models.Coordinates, bool) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get(latKey), 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get(lngKey), 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: lat, Lng: lng}, true
}

// parseMetric maps a metric query parameter to a Metric, defaulting to time
func parseMetric(r *http.Request) (models.Metric, bool) {
	switch r.URL.Query().Get("metric") {
	case "", "time":
		return models.MetricTime, true
	case "distance":
		return models.MetricDistance, true
	case "cost":
		return models.MetricCost, true
	default:
		return "", false
	}
}

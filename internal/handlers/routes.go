package handlers

import (
	"log"
	"net/http"

	"sakay-router/internal/routing"
)

// HandleGraphRoute handles GET /api/v1/route — static-graph mode
func (h *Handler) HandleGraphRoute(w http.ResponseWriter, r *http.Request) {
	start, ok := parseCoords(r, "start_lat", "start_lng")
	if !ok {
		h.handleValidationError(w, "start_lat and start_lng are required")
		return
	}
	end, ok := parseCoords(r, "end_lat", "end_lng")
	if !ok {
		h.handleValidationError(w, "end_lat and end_lng are required")
		return
	}
	metric, ok := parseMetric(r)
	if !ok {
		h.handleValidationError(w, "metric must be one of: time, distance, cost")
		return
	}

	log.Printf("[HTTP] GET /api/v1/route: start=(%.5f,%.5f) end=(%.5f,%.5f) metric=%s",
		start.Lat, start.Lng, end.Lat, end.Lng, metric)

	itinerary := h.Pathfinder.ShortestPath(start, end, metric)
	if itinerary == nil {
		h.writeError(w, http.StatusUnprocessableEntity, "ROUTE_NOT_FOUND",
			"No route could be found between the given points")
		return
	}

	h.writeJSON(w, http.StatusOK, itinerary)
}

// HandleLiveDirections handles GET /api/v1/directions — live provider mode
// returning the three labeled variants of one fetched route
func (h *Handler) HandleLiveDirections(w http.ResponseWriter, r *http.Request) {
	start, ok := parseCoords(r, "start_lat", "start_lng")
	if !ok {
		h.handleValidationError(w, "start_lat and start_lng are required")
		return
	}
	end, ok := parseCoords(r, "end_lat", "end_lng")
	if !ok {
		h.handleValidationError(w, "end_lat and end_lng are required")
		return
	}

	log.Printf("[HTTP] GET /api/v1/directions: start=(%.5f,%.5f) end=(%.5f,%.5f)",
		start.Lat, start.Lng, end.Lat, end.Lng)

	base := h.Gateway.FetchDirections(r.Context(), start, end)
	if base == nil {
		h.writeError(w, http.StatusUnprocessableEntity, "DIRECTIONS_UNAVAILABLE",
			"Live directions are unavailable right now. Please try again.")
		return
	}

	fastest, cheapest, shortest := routing.Expand(base)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"fastest":  fastest,
		"cheapest": cheapest,
		"shortest": shortest,
	})
}

// HandlePlaceSearch handles GET /api/v1/place-search
func (h *Handler) HandlePlaceSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	log.Printf("[HTTP] GET /api/v1/place-search: query=%s", query)

	// Short queries are an expected condition, not an error; the gateway
	// short-circuits them to an empty list.
	h.writeJSON(w, http.StatusOK, h.Gateway.SearchPlaces(r.Context(), query))
}

// HandleReverseGeocode handles GET /api/v1/reverse-geocode
func (h *Handler) HandleReverseGeocode(w http.ResponseWriter, r *http.Request) {
	pos, ok := parseCoords(r, "lat", "lng")
	if !ok {
		h.handleValidationError(w, "lat and lng are required")
		return
	}

	log.Printf("[HTTP] GET /api/v1/reverse-geocode: pos=(%.5f,%.5f)", pos.Lat, pos.Lng)
	h.writeJSON(w, http.StatusOK, h.Gateway.ReverseGeocode(r.Context(), pos))
}

// HandleTerminals handles GET /api/v1/terminals — the static graph nodes
func (h *Handler) HandleTerminals(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Graph.Nodes())
}

// HandleHealth handles GET /healthz
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakay-router/internal/models"
	"sakay-router/internal/routing"
	"sakay-router/internal/transit"
)

// stubGateway is a canned-response Gateway for handler tests
type stubGateway struct {
	places     []models.Place
	reverse    *models.ReverseResult
	directions *models.Itinerary
}

func (s *stubGateway) SearchPlaces(ctx context.Context, query string) []models.Place {
	if len(query) < 3 {
		return []models.Place{}
	}
	return s.places
}

func (s *stubGateway) ReverseGeocode(ctx context.Context, pos models.Coordinates) *models.ReverseResult {
	return s.reverse
}

func (s *stubGateway) FetchDirections(ctx context.Context, start, end models.Coordinates) *models.Itinerary {
	return s.directions
}

func newTestHandler(gw *stubGateway) *Handler {
	graph := transit.Diliman()
	return &Handler{
		Graph:      graph,
		Pathfinder: routing.NewPathfinder(graph),
		Gateway:    gw,
	}
}

func TestHandleGraphRouteSuccess(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	req := httptest.NewRequest("GET",
		"/api/v1/route?start_lat=14.6745&start_lng=121.0355&end_lat=14.6570&end_lng=121.0585&metric=time", nil)
	rec := httptest.NewRecorder()

	h.HandleGraphRoute(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var it models.Itinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&it))
	assert.Equal(t, 40.0, it.TotalTimeMin)
	assert.Equal(t, 33.0, it.TotalCost)
	assert.Len(t, it.Path, 3)
}

func TestHandleGraphRouteNotFound(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	// Same point start and end resolves to the same terminal
	req := httptest.NewRequest("GET",
		"/api/v1/route?start_lat=14.6741&start_lng=121.0359&end_lat=14.6741&end_lng=121.0359", nil)
	rec := httptest.NewRecorder()

	h.HandleGraphRoute(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ROUTE_NOT_FOUND", resp.Error.Code)
}

func TestHandleGraphRouteValidation(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing coordinates", "/api/v1/route?start_lat=14.6"},
		{"malformed latitude", "/api/v1/route?start_lat=abc&start_lng=121&end_lat=14.6&end_lng=121.05"},
		{"unknown metric", "/api/v1/route?start_lat=14.6745&start_lng=121.0355&end_lat=14.6570&end_lng=121.0585&metric=vibes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			h.HandleGraphRoute(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		})
	}
}

func TestHandleLiveDirectionsReturnsVariants(t *testing.T) {
	gw := &stubGateway{
		directions: &models.Itinerary{
			ID:              "route_test",
			TotalTimeMin:    15,
			TotalDistanceKm: 6,
			TotalCost:       17,
			Path:            []models.Coordinates{{Lat: 14.6741, Lng: 121.0359}, {Lat: 14.6575, Lng: 121.0580}},
			Legs:            []models.RouteLeg{{Instruction: "Drive", Mode: models.ModeRide, DistanceMeters: 6000, DurationSecs: 900}},
			Category:        models.CategoryFastest,
			Labels:          []string{"fastest"},
		},
	}
	h := newTestHandler(gw)

	req := httptest.NewRequest("GET",
		"/api/v1/directions?start_lat=14.6741&start_lng=121.0359&end_lat=14.6575&end_lng=121.0580", nil)
	rec := httptest.NewRecorder()

	h.HandleLiveDirections(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]models.Itinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Contains(t, resp, "fastest")
	require.Contains(t, resp, "cheapest")
	require.Contains(t, resp, "shortest")

	assert.Equal(t, "route_test_fast", resp["fastest"].ID)
	assert.Equal(t, 15.0, resp["fastest"].TotalTimeMin)
	assert.LessOrEqual(t, resp["cheapest"].TotalCost, 17.0)
	assert.GreaterOrEqual(t, resp["cheapest"].TotalTimeMin, 15.0)
}

func TestHandleLiveDirectionsUnavailable(t *testing.T) {
	h := newTestHandler(&stubGateway{directions: nil})

	req := httptest.NewRequest("GET",
		"/api/v1/directions?start_lat=14.6741&start_lng=121.0359&end_lat=14.6575&end_lng=121.0580", nil)
	rec := httptest.NewRecorder()

	h.HandleLiveDirections(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "DIRECTIONS_UNAVAILABLE", resp.Error.Code)
}

func TestHandlePlaceSearch(t *testing.T) {
	gw := &stubGateway{places: []models.Place{{Name: "SM City North EDSA"}}}
	h := newTestHandler(gw)

	req := httptest.NewRequest("GET", "/api/v1/place-search?q=SM+City", nil)
	rec := httptest.NewRecorder()

	h.HandlePlaceSearch(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var places []models.Place
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&places))
	require.Len(t, places, 1)
	assert.Equal(t, "SM City North EDSA", places[0].Name)
}

func TestHandlePlaceSearchShortQueryIsOKAndEmpty(t *testing.T) {
	h := newTestHandler(&stubGateway{places: []models.Place{{Name: "should not appear"}}})

	req := httptest.NewRequest("GET", "/api/v1/place-search?q=ab", nil)
	rec := httptest.NewRecorder()

	h.HandlePlaceSearch(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var places []models.Place
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&places))
	assert.Empty(t, places)
}

func TestHandleReverseGeocode(t *testing.T) {
	gw := &stubGateway{reverse: &models.ReverseResult{ShortName: "Teachers Village East", AreaLabel: "Maginhawa St"}}
	h := newTestHandler(gw)

	req := httptest.NewRequest("GET", "/api/v1/reverse-geocode?lat=14.6741&lng=121.0359", nil)
	rec := httptest.NewRecorder()

	h.HandleReverseGeocode(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ReverseResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "Teachers Village East", result.ShortName)
}

func TestHandleReverseGeocodeValidation(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	req := httptest.NewRequest("GET", "/api/v1/reverse-geocode?lat=14.6741", nil)
	rec := httptest.NewRecorder()

	h.HandleReverseGeocode(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTerminals(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	req := httptest.NewRequest("GET", "/api/v1/terminals", nil)
	rec := httptest.NewRecorder()

	h.HandleTerminals(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var nodes []models.GraphNode
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&nodes))
	assert.Equal(t, transit.Diliman().Len(), len(nodes))
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(&stubGateway{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	h.HandleHealth(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"sakay-router/internal/models"
)

// Gateway is the throttled boundary to the external mapping provider.
// Transport and parse failures never escape it: search and reverse
// geocoding fail open to local fallback data, directions fail to nil.
type Gateway interface {
	SearchPlaces(ctx context.Context, query string) []models.Place
	ReverseGeocode(ctx context.Context, pos models.Coordinates) *models.ReverseResult
	FetchDirections(ctx context.Context, start, end models.Coordinates) *models.Itinerary
}

// DirectionsCache persists live-directions lookups across calls
type DirectionsCache interface {
	Get(ctx context.Context, origin, dest models.Coordinates) (*models.DirectionsCacheEntry, error)
	Set(ctx context.Context, entry *models.DirectionsCacheEntry) error
}

// Fare model constants for live driving directions
const (
	baseFare   = 13.0
	fareFreeKm = 4.0
	farePerKm  = 2.0
)

const minQueryLength = 3

// Throttle floors. Reverse geocoding is triggered by map panning and
// tolerates tighter spacing than user-initiated search and directions.
const (
	defaultSearchInterval  = 1000 * time.Millisecond
	defaultReverseInterval = 500 * time.Millisecond
)

// Config holds gateway construction options. Zero values get defaults.
type Config struct {
	BaseURL          string
	APIKey           string
	CountryCode      string
	HTTPClient       *http.Client
	Throttle         *Throttle
	SearchInterval   time.Duration
	ReverseInterval  time.Duration
	DirectionsCache  DirectionsCache
	ResponseCacheTTL time.Duration
}

type geoapifyGateway struct {
	baseURL         string
	apiKey          string
	countryCode     string
	httpClient      *http.Client
	throttle        *Throttle
	searchInterval  time.Duration
	reverseInterval time.Duration
	directions      DirectionsCache
	responses       *cache.Cache
}

// NewGateway creates a gateway against a Geoapify-style provider
func NewGateway(cfg Config) Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.geoapify.com"
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = "ph"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Throttle == nil {
		cfg.Throttle = NewThrottle()
	}
	if cfg.SearchInterval == 0 {
		cfg.SearchInterval = defaultSearchInterval
	}
	if cfg.ReverseInterval == 0 {
		cfg.ReverseInterval = defaultReverseInterval
	}
	if cfg.ResponseCacheTTL == 0 {
		cfg.ResponseCacheTTL = 5 * time.Minute
	}

	return &geoapifyGateway{
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		countryCode:     cfg.CountryCode,
		httpClient:      cfg.HTTPClient,
		throttle:        cfg.Throttle,
		searchInterval:  cfg.SearchInterval,
		reverseInterval: cfg.ReverseInterval,
		directions:      cfg.DirectionsCache,
		responses:       cache.New(cfg.ResponseCacheTTL, 10*time.Minute),
	}
}

// geocodeResult is one feature of a search or reverse response
type geocodeResult struct {
	featureAddress
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type routingResponse struct {
	Features []routeFeature `json:"features"`
}

type routeFeature struct {
	Geometry struct {
		Coordinates [][][]float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Distance float64    `json:"distance"`
		Time     float64    `json:"time"`
		Legs     []routeLeg `json:"legs"`
	} `json:"properties"`
}

type routeLeg struct {
	Steps []routeStep `json:"steps"`
}

type routeStep struct {
	FromIndex   int     `json:"from_index"`
	ToIndex     int     `json:"to_index"`
	Distance    float64 `json:"distance"`
	Time        float64 `json:"time"`
	Instruction struct {
		Text string `json:"text"`
	} `json:"instruction"`
}

func (g *geoapifyGateway) SearchPlaces(ctx context.Context, query string) []models.Place {
	if len(query) < minQueryLength {
		log.Printf("[GATEWAY] Search query too short, returning empty: query=%q", query)
		return []models.Place{}
	}

	cacheKey := "search:" + strings.ToLower(query)
	if v, ok := g.responses.Get(cacheKey); ok {
		return v.([]models.Place)
	}

	g.throttle.Wait(g.searchInterval)

	queryURL := fmt.Sprintf("%s/v1/geocode/search?text=%s&filter=countrycode:%s&format=json&limit=5&apiKey=%s",
		g.baseURL, url.QueryEscape(query), g.countryCode, g.apiKey)

	results, err := g.fetchGeocode(ctx, queryURL)
	if err != nil {
		log.Printf("[GATEWAY] Search failed, using fallback places: query=%s err=%v", query, err)
		return fallbackSearch(query)
	}

	places := make([]models.Place, 0, len(results))
	for _, r := range results {
		name := r.Name
		if name == "" {
			name = r.AddressLine1
		}
		address := r.AddressLine2
		if address == "" {
			address = r.Formatted
		}
		places = append(places, models.Place{
			Name:     name,
			Address:  address,
			Position: models.Coordinates{Lat: r.Lat, Lng: r.Lon},
		})
	}

	log.Printf("[GATEWAY] Search response: query=%s results=%d", query, len(places))
	g.responses.Set(cacheKey, places, cache.DefaultExpiration)
	return places
}

func (g *geoapifyGateway) ReverseGeocode(ctx context.Context, pos models.Coordinates) *models.ReverseResult {
	cacheKey := fmt.Sprintf("reverse:%.5f,%.5f",
		models.RoundCoordinate(pos.Lat), models.RoundCoordinate(pos.Lng))
	if v, ok := g.responses.Get(cacheKey); ok {
		return v.(*models.ReverseResult)
	}

	g.throttle.Wait(g.reverseInterval)

	queryURL := fmt.Sprintf("%s/v1/geocode/reverse?lat=%f&lon=%f&format=json&apiKey=%s",
		g.baseURL, pos.Lat, pos.Lng, g.apiKey)

	results, err := g.fetchGeocode(ctx, queryURL)
	if err != nil {
		log.Printf("[GATEWAY] Reverse geocode failed, using coordinate label: pos=(%.4f,%.4f) err=%v", pos.Lat, pos.Lng, err)
		return fallbackReverse(pos)
	}
	if len(results) == 0 {
		log.Printf("[GATEWAY] Reverse geocode returned no features: pos=(%.4f,%.4f)", pos.Lat, pos.Lng)
		return fallbackReverse(pos)
	}

	result := &models.ReverseResult{
		ShortName: shortName(results[0].featureAddress),
		AreaLabel: areaLabel(results[0].featureAddress),
	}
	g.responses.Set(cacheKey, result, cache.DefaultExpiration)
	return result
}

func (g *geoapifyGateway) FetchDirections(ctx context.Context, start, end models.Coordinates) *models.Itinerary {
	if g.directions != nil {
		if entry, err := g.directions.Get(ctx, start, end); err == nil && entry != nil {
			log.Printf("[GATEWAY] Directions cache hit: (%.5f,%.5f)->(%.5f,%.5f)", start.Lat, start.Lng, end.Lat, end.Lng)
			return itineraryFromEntry(entry)
		}
	}

	g.throttle.Wait(g.searchInterval)

	queryURL := fmt.Sprintf("%s/v1/routing?waypoints=%f,%f|%f,%f&mode=drive&apiKey=%s",
		g.baseURL, start.Lat, start.Lng, end.Lat, end.Lng, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", queryURL, nil)
	if err != nil {
		log.Printf("[ERROR] Failed to create directions request: err=%v", err)
		return nil
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] Directions request failed: err=%v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[GATEWAY] Directions API error: status=%d body=%s", resp.StatusCode, string(body))
		return nil
	}

	var routing routingResponse
	if err := json.NewDecoder(resp.Body).Decode(&routing); err != nil {
		log.Printf("[GATEWAY] Failed to decode directions response: err=%v", err)
		return nil
	}
	if len(routing.Features) == 0 {
		log.Printf("[GATEWAY] Directions returned no routes")
		return nil
	}

	feature := routing.Features[0]
	path := make([]models.Coordinates, 0)
	for _, line := range feature.Geometry.Coordinates {
		for _, pt := range line {
			if len(pt) >= 2 {
				// GeoJSON order: [lng, lat]
				path = append(path, models.Coordinates{Lat: pt[1], Lng: pt[0]})
			}
		}
	}
	if len(path) < 2 {
		path = []models.Coordinates{start, end}
	}

	legs := make([]models.RouteLeg, 0)
	for _, l := range feature.Properties.Legs {
		for _, s := range l.Steps {
			legs = append(legs, models.RouteLeg{
				Instruction:    s.Instruction.Text,
				Mode:           models.ModeRide,
				DistanceMeters: s.Distance,
				DurationSecs:   s.Time,
				WaypointFrom:   s.FromIndex,
				WaypointTo:     s.ToIndex,
			})
		}
	}

	entry := &models.DirectionsCacheEntry{
		Origin:         start,
		Destination:    end,
		DistanceMeters: feature.Properties.Distance,
		DurationSecs:   feature.Properties.Time,
		Path:           path,
		Legs:           legs,
	}

	if g.directions != nil {
		if err := g.directions.Set(ctx, entry); err != nil {
			log.Printf("[ERROR] Failed to cache directions: err=%v", err)
		}
	}

	log.Printf("[GATEWAY] Directions fetched: distance=%.0fm duration=%.0fs legs=%d",
		entry.DistanceMeters, entry.DurationSecs, len(legs))
	return itineraryFromEntry(entry)
}

func (g *geoapifyGateway) fetchGeocode(ctx context.Context, queryURL string) ([]geocodeResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", queryURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	return decoded.Results, nil
}

func itineraryFromEntry(e *models.DirectionsCacheEntry) *models.Itinerary {
	distKm := e.DistanceMeters / 1000
	return &models.Itinerary{
		ID:              "route_" + uuid.NewString(),
		TotalTimeMin:    e.DurationSecs / 60,
		TotalDistanceKm: distKm,
		TotalCost:       EstimateFare(distKm),
		Path:            e.Path,
		Legs:            e.Legs,
		Category:        models.CategoryFastest,
		Labels:          []string{string(models.CategoryFastest)},
	}
}

// EstimateFare applies the driving fare model: a base fare plus a per-km
// rate beyond the first kilometers, ceiling-rounded to whole pesos.
func EstimateFare(distKm float64) float64 {
	fare := baseFare
	if distKm > fareFreeKm {
		fare += (distKm - fareFreeKm) * farePerKm
	}
	return math.Ceil(fare)
}

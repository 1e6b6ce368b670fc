package models

import "math"

// Coordinates represents a geographic point. Values outside the usual
// lat/lng ranges are accepted as-is; no validation is performed.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoundCoordinate rounds a coordinate to 5 decimal places (~1m precision),
// the precision used for cache keys and same-point comparisons
func RoundCoordinate(v float64) float64 {
	return math.Round(v*100000) / 100000
}

// TerminalCategory classifies a terminal by the vehicles it serves
type TerminalCategory string

const (
	TerminalBus      TerminalCategory = "bus"
	TerminalJeep     TerminalCategory = "jeep"
	TerminalEJeep    TerminalCategory = "e_jeep"
	TerminalTricycle TerminalCategory = "tricycle"
	TerminalMixed    TerminalCategory = "mixed"
)

// TransportMode is how a single leg is traveled
type TransportMode string

const (
	ModeWalk TransportMode = "walk"
	ModeRide TransportMode = "ride"
)

// Metric selects which edge weight the pathfinder minimizes
type Metric string

const (
	MetricTime     Metric = "time"
	MetricDistance Metric = "distance"
	MetricCost     Metric = "cost"
)

// RouteCategory labels an itinerary for presentation
type RouteCategory string

const (
	CategoryFastest  RouteCategory = "fastest"
	CategoryCheapest RouteCategory = "cheapest"
	CategoryShortest RouteCategory = "shortest"
)

// Edge is a directed weighted connection to another graph node.
// To is the dense index of the target node within the graph arena.
// Each weight dimension is independent; the pathfinder's metric picks one.
type Edge struct {
	To         int           `json:"to"`
	DistanceKm float64       `json:"distance_km"`
	TimeMin    float64       `json:"time_min"`
	Cost       float64       `json:"cost"`
	Mode       TransportMode `json:"mode"`
	Vehicle    string        `json:"vehicle,omitempty"`
}

// GraphNode is a fixed transit terminal in the district graph.
// The graph is compiled-in constant data and never mutated at runtime.
type GraphNode struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Position Coordinates      `json:"position"`
	Category TerminalCategory `json:"category"`
	Edges    []Edge           `json:"edges"`
}

// RouteLeg is one step of an itinerary
type RouteLeg struct {
	Instruction    string        `json:"instruction"`
	Mode           TransportMode `json:"mode"`
	DistanceMeters float64       `json:"distance_meters"`
	DurationSecs   float64       `json:"duration_secs"`
	WaypointFrom   int           `json:"waypoint_from"`
	WaypointTo     int           `json:"waypoint_to"`
}

// Itinerary is one fully computed trip plan. It is produced fresh per
// request, never mutated after construction, and owned by the caller.
type Itinerary struct {
	ID              string        `json:"id"`
	TotalTimeMin    float64       `json:"total_time_min"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	TotalCost       float64       `json:"total_cost"`
	Path            []Coordinates `json:"path"`
	Legs            []RouteLeg    `json:"legs"`
	Category        RouteCategory `json:"category"`
	Labels          []string      `json:"labels"`
}

// Place is one normalized place-search result
type Place struct {
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Position Coordinates `json:"position"`
}

// ReverseResult is a normalized reverse geocoding result
type ReverseResult struct {
	ShortName string `json:"short_name"`
	AreaLabel string `json:"area_label"`
}

// DirectionsCacheEntry is a cached live-directions lookup
type DirectionsCacheEntry struct {
	Origin         Coordinates   `json:"origin"`
	Destination    Coordinates   `json:"destination"`
	DistanceMeters float64       `json:"distance_meters"`
	DurationSecs   float64       `json:"duration_secs"`
	Path           []Coordinates `json:"path"`
	Legs           []RouteLeg    `json:"legs"`
}

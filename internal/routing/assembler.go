package routing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"sakay-router/internal/models"
	"sakay-router/internal/transit"
)

const (
	metersPerKilometer = 1000.0
	secondsPerMinute   = 60.0
)

func categoryFor(metric models.Metric) models.RouteCategory {
	switch metric {
	case models.MetricDistance:
		return models.CategoryShortest
	case models.MetricCost:
		return models.CategoryCheapest
	default:
		return models.CategoryFastest
	}
}

// newItineraryID returns an id unique within (and across) process
// lifetimes. Never reused between two computations.
func newItineraryID() string {
	return "route_" + uuid.NewString()
}

// assemble converts a node-index path into a full itinerary. For each
// consecutive pair it uses the first outgoing edge of the earlier node
// that targets the later one. Waypoint indices in static-graph mode are
// the positions of the pair within the path.
func assemble(g *transit.Graph, nodePath []int, metric models.Metric) *models.Itinerary {
	path := make([]models.Coordinates, len(nodePath))
	for i, idx := range nodePath {
		path[i] = g.Node(idx).Position
	}

	edges := make([]models.Edge, 0, len(nodePath)-1)
	legs := make([]models.RouteLeg, 0, len(nodePath)-1)
	for i := 0; i < len(nodePath)-1; i++ {
		edge, ok := findEdge(g, nodePath[i], nodePath[i+1])
		if !ok {
			// The path came out of the search over the same graph, so a
			// missing edge is a programming error.
			panic(fmt.Sprintf("no edge %s -> %s", g.Node(nodePath[i]).ID, g.Node(nodePath[i+1]).ID))
		}
		edges = append(edges, edge)

		target := g.Node(nodePath[i+1])
		instruction := "Walk to " + target.Name
		if edge.Mode == models.ModeRide {
			instruction = fmt.Sprintf("Ride %s to %s", edge.Vehicle, target.Name)
		}

		legs = append(legs, models.RouteLeg{
			Instruction:    instruction,
			Mode:           edge.Mode,
			DistanceMeters: edge.DistanceKm * metersPerKilometer,
			DurationSecs:   edge.TimeMin * secondsPerMinute,
			WaypointFrom:   i,
			WaypointTo:     i + 1,
		})
	}

	category := categoryFor(metric)
	return &models.Itinerary{
		ID:              newItineraryID(),
		TotalTimeMin:    lo.SumBy(edges, func(e models.Edge) float64 { return e.TimeMin }),
		TotalDistanceKm: lo.SumBy(edges, func(e models.Edge) float64 { return e.DistanceKm }),
		TotalCost:       lo.SumBy(edges, func(e models.Edge) float64 { return e.Cost }),
		Path:            path,
		Legs:            legs,
		Category:        category,
		Labels:          []string{string(category)},
	}
}

// findEdge returns the first outgoing edge of from targeting to
func findEdge(g *transit.Graph, from, to int) (models.Edge, bool) {
	return lo.Find(g.Node(from).Edges, func(e models.Edge) bool { return e.To == to })
}

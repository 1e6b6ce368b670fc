package routing

import (
	"math"

	"sakay-router/internal/models"
)

// Variant scaling constants. These simulate multiple providers from a
// single computed route; the totals are presentation heuristics, not
// recomputations.
const (
	cheapestCostFactor = 0.7
	cheapestCostFloor  = 13
	cheapestTimeFactor = 1.3
	shortestDistFactor = 0.95
	shortestTimeFactor = 1.1
)

// Expand derives the three labeled presentations of one base itinerary.
// All three share the base's path and legs; only headline totals, ids and
// labels differ. The pathfinder is not re-run.
func Expand(base *models.Itinerary) (fastest, cheapest, shortest *models.Itinerary) {
	if base == nil {
		return nil, nil, nil
	}

	f := *base
	f.ID = base.ID + "_fast"
	f.Category = models.CategoryFastest
	f.Labels = []string{string(models.CategoryFastest)}

	c := *base
	c.ID = base.ID + "_cheap"
	c.TotalCost = math.Max(cheapestCostFloor, math.Floor(base.TotalCost*cheapestCostFactor))
	c.TotalTimeMin = math.Ceil(base.TotalTimeMin * cheapestTimeFactor)
	c.Category = models.CategoryCheapest
	c.Labels = []string{string(models.CategoryCheapest)}

	s := *base
	s.ID = base.ID + "_short"
	s.TotalDistanceKm = math.Round(base.TotalDistanceKm*shortestDistFactor*100) / 100
	s.TotalTimeMin = math.Ceil(base.TotalTimeMin * shortestTimeFactor)
	s.Category = models.CategoryShortest
	s.Labels = []string{string(models.CategoryShortest)}

	return &f, &c, &s
}

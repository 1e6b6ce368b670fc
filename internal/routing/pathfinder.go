package routing

import (
	"container/heap"
	"log"
	"math"

	"sakay-router/internal/models"
	"sakay-router/internal/transit"
)

// Pathfinder computes single-pair shortest paths over a static transit
// graph. It is a pure function of its inputs plus the graph; safe for
// concurrent use.
type Pathfinder struct {
	graph *transit.Graph
}

// NewPathfinder creates a pathfinder over the given graph
func NewPathfinder(g *transit.Graph) *Pathfinder {
	return &Pathfinder{graph: g}
}

// ShortestPath resolves both coordinates to their nearest terminals and
// runs a shortest-path search minimizing the weight dimension selected by
// metric. Returns nil when either endpoint fails to resolve, both resolve
// to the same terminal, or no connecting path exists. "No route" is an
// expected outcome, never an error.
func (p *Pathfinder) ShortestPath(start, end models.Coordinates, metric models.Metric) *models.Itinerary {
	src, ok := p.graph.Nearest(start)
	if !ok {
		log.Printf("[ROUTING] No terminals in graph, cannot route")
		return nil
	}
	dst, ok := p.graph.Nearest(end)
	if !ok {
		return nil
	}

	if src == dst {
		log.Printf("[ROUTING] Start and end resolve to the same terminal: %s", p.graph.Node(src).ID)
		return nil
	}

	nodePath := p.dijkstra(src, dst, metric)
	if nodePath == nil {
		log.Printf("[ROUTING] No path found: src=%s dst=%s metric=%s",
			p.graph.Node(src).ID, p.graph.Node(dst).ID, metric)
		return nil
	}

	it := assemble(p.graph, nodePath, metric)
	log.Printf("[ROUTING] Route computed: src=%s dst=%s metric=%s nodes=%d time=%.1f dist=%.2f cost=%.0f",
		p.graph.Node(src).ID, p.graph.Node(dst).ID, metric,
		len(nodePath), it.TotalTimeMin, it.TotalDistanceKm, it.TotalCost)
	return it
}

func edgeWeight(e models.Edge, metric models.Metric) float64 {
	switch metric {
	case models.MetricDistance:
		return e.DistanceKm
	case models.MetricCost:
		return e.Cost
	default:
		return e.TimeMin
	}
}

type pqItem struct {
	node int
	dist float64
	seq  int
}

type pq []pqItem

func (p pq) Len() int { return len(p) }

// Equal distances fall back to insertion order so the search is
// deterministic for a fixed graph.
func (p pq) Less(i, j int) bool {
	if p[i].dist != p[j].dist {
		return p[i].dist < p[j].dist
	}
	return p[i].seq < p[j].seq
}

func (p pq) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *pq) Push(x any) {
	*p = append(*p, x.(pqItem))
}

func (p *pq) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}

// dijkstra returns the node-index path from src to dst, or nil when dst
// is unreachable. Relaxation accepts only strictly smaller tentative
// distances, so the first of two equal parallel edges wins.
func (p *Pathfinder) dijkstra(src, dst int, metric models.Metric) []int {
	n := p.graph.Len()
	dist := make([]float64, n)
	prev := make([]int, n)
	settled := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	seq := 0
	q := &pq{}
	heap.Push(q, pqItem{node: src, dist: 0, seq: seq})

	for q.Len() > 0 {
		cur := heap.Pop(q).(pqItem)
		u := cur.node

		if settled[u] {
			continue
		}
		settled[u] = true

		if u == dst {
			break
		}

		for _, e := range p.graph.Node(u).Edges {
			nd := dist[u] + edgeWeight(e, metric)
			if nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
				seq++
				heap.Push(q, pqItem{node: e.To, dist: nd, seq: seq})
			}
		}
	}

	if math.IsInf(dist[dst], 1) {
		return nil
	}

	path := []int{}
	for cur := dst; cur != -1; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != src {
		return nil
	}
	return path
}

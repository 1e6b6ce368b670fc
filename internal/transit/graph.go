package transit

import (
	"fmt"

	"sakay-router/internal/models"
)

// NodeSpec declares one terminal when authoring a graph
type NodeSpec struct {
	ID       string
	Name     string
	Address  string
	Position models.Coordinates
	Category models.TerminalCategory
}

// EdgeSpec declares one directed edge between terminals by id
type EdgeSpec struct {
	From       string
	To         string
	DistanceKm float64
	TimeMin    float64
	Cost       float64
	Mode       models.TransportMode
	Vehicle    string
}

// Graph is an immutable arena of transit nodes. Nodes are stored in a
// dense slice and edges target integer indices, so the pathfinder never
// hashes string ids in its hot loop. The id→index map is built once here.
type Graph struct {
	nodes []models.GraphNode
	index map[string]int
}

// NewGraph builds a graph arena from declarative node and edge specs.
// Edge order within a node follows spec order; parallel edges between the
// same pair are kept as declared, not deduplicated.
func NewGraph(nodes []NodeSpec, edges []EdgeSpec) (*Graph, error) {
	g := &Graph{
		nodes: make([]models.GraphNode, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		if _, exists := g.index[n.ID]; exists {
			return nil, fmt.Errorf("duplicate node id: %s", n.ID)
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, models.GraphNode{
			ID:       n.ID,
			Name:     n.Name,
			Address:  n.Address,
			Position: n.Position,
			Category: n.Category,
		})
	}

	for _, e := range edges {
		from, ok := g.index[e.From]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node: %s", e.From)
		}
		to, ok := g.index[e.To]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node: %s", e.To)
		}
		g.nodes[from].Edges = append(g.nodes[from].Edges, models.Edge{
			To:         to,
			DistanceKm: e.DistanceKm,
			TimeMin:    e.TimeMin,
			Cost:       e.Cost,
			Mode:       e.Mode,
			Vehicle:    e.Vehicle,
		})
	}

	return g, nil
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node at a dense index
func (g *Graph) Node(i int) *models.GraphNode {
	return &g.nodes[i]
}

// Nodes returns the full node slice. Callers must not mutate it.
func (g *Graph) Nodes() []models.GraphNode {
	return g.nodes
}

// Index resolves a node id to its dense index
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Nearest maps an arbitrary coordinate to the closest known node by
// squared planar lat/lng degree distance. This is deliberately not
// geodesic: the district graph's fare and time constants were tuned
// against the planar approximation. Ties go to the first node scanned.
// Returns false on an empty graph.
func (g *Graph) Nearest(p models.Coordinates) (int, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}

	best := 0
	bestDist := squaredDegrees(p, g.nodes[0].Position)
	for i := 1; i < len(g.nodes); i++ {
		if d := squaredDegrees(p, g.nodes[i].Position); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, true
}

func squaredDegrees(a, b models.Coordinates) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return dLat*dLat + dLng*dLng
}

package layout

import (
	"math/rand/v2"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// RandomGraph builds a fixture graph with n default-sized nodes at random
// positions and an edge i→j (i < j) with probability edgeProbability. The
// caller supplies the random source, so fixtures are reproducible: two
// generators seeded identically yield identical graphs.
func RandomGraph(n int, edgeProbability float64, rng *rand.Rand) *graph.Graph {
	g := graph.New()

	for i := 0; i < n; i++ {
		node := graph.NewNode(graph.NodeID(i))
		node.Position = geom.Point{
			X: rng.Float64() * initSpread,
			Y: rng.Float64() * initSpread,
		}
		g.AddNode(node)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < edgeProbability {
				g.AddEdge(graph.Edge{From: graph.NodeID(i), To: graph.NodeID(j)})
			}
		}
	}

	return g
}

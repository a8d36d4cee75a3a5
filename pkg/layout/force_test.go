package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

func TestForceEmptyGraph(t *testing.T) {
	g := graph.New()
	res := ForceDirectedLayout{}.Apply(g, DefaultConfig())

	require.True(t, res.Success)
	require.Equal(t, 0, g.NodeCount())
}

func TestForceSeparatesCoincidentNodes(t *testing.T) {
	// Two connected nodes starting at the same position must end up a
	// strictly positive distance apart.
	g := graph.New()
	a := graph.NewNode(1)
	b := graph.NewNode(2)
	a.Position = geom.Point{X: 100, Y: 100}
	b.Position = geom.Point{X: 100, Y: 100}
	g.AddNode(a)
	g.AddNode(b)
	g.AddEdge(graph.Edge{From: 1, To: 2})

	cfg := DefaultConfig()
	cfg.Iterations = 50

	res := ForceDirectedLayout{}.Apply(g, cfg)
	require.True(t, res.Success)

	na, _ := g.Node(1)
	nb, _ := g.Node(2)
	require.Greater(t, na.Center().Distance(nb.Center()), 0.0)
}

func TestForceIterationsBounded(t *testing.T) {
	for _, iterations := range []int{1, 10, 100} {
		g := chainGraph(6)
		cfg := DefaultConfig()
		cfg.Iterations = iterations

		res := ForceDirectedLayout{}.Apply(g, cfg)
		require.True(t, res.Success)
		require.LessOrEqual(t, res.Iterations, cfg.Iterations)
	}
}

func TestForceSeedReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234

	a := chainGraph(8)
	b := chainGraph(8)
	require.True(t, ForceDirectedLayout{}.Apply(a, cfg).Success)
	require.True(t, ForceDirectedLayout{}.Apply(b, cfg).Success)

	for _, na := range a.Nodes() {
		nb, ok := b.Node(na.ID)
		require.True(t, ok)
		require.Equal(t, nb.Position, na.Position, "node %d diverged across equal seeds", na.ID)
	}
}

func TestForceDifferentSeedsDiverge(t *testing.T) {
	cfgA := DefaultConfig()
	cfgA.Seed = 1
	cfgB := DefaultConfig()
	cfgB.Seed = 2

	a := chainGraph(8)
	b := chainGraph(8)
	ForceDirectedLayout{}.Apply(a, cfgA)
	ForceDirectedLayout{}.Apply(b, cfgB)

	diverged := false
	for _, na := range a.Nodes() {
		nb, _ := b.Node(na.ID)
		if na.Position != nb.Position {
			diverged = true
			break
		}
	}
	require.True(t, diverged, "different seeds produced identical layouts")
}

func TestForceSelfLoop(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.NewNode(1))
	g.AddEdge(graph.Edge{From: 1, To: 1})

	res := ForceDirectedLayout{}.Apply(g, DefaultConfig())
	require.True(t, res.Success)
}

func TestForceDanglingEdge(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.NewNode(1))
	g.AddEdge(graph.Edge{From: 1, To: 99}) // endpoint missing, skipped

	res := ForceDirectedLayout{}.Apply(g, DefaultConfig())
	require.True(t, res.Success)
}

func TestForceSpreadsConnectedPair(t *testing.T) {
	// Connected nodes should settle near the optimal edge length, not on
	// top of each other and not at opposite ends of the canvas.
	g := chainGraph(2)
	cfg := DefaultConfig()

	res := ForceDirectedLayout{}.Apply(g, cfg)
	require.True(t, res.Success)

	na, _ := g.Node(0)
	nb, _ := g.Node(1)
	d := na.Center().Distance(nb.Center())
	require.Greater(t, d, cfg.NodeSpacing/2)
}

// chainGraph builds nodes 0..n-1 at the origin linked in a path.
func chainGraph(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(graph.NewNode(graph.NodeID(i)))
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(graph.Edge{From: graph.NodeID(i), To: graph.NodeID(i + 1)})
	}
	return g
}

package layout

import (
	"math"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// minCircleRadius keeps very small graphs from collapsing into a dot.
const minCircleRadius = 100.0

// CircularLayout places nodes evenly around a circle, in insertion order.
// It is deterministic and O(n). No overlap guarantee is made: for many nodes
// at small radius, neighboring rectangles can intersect.
type CircularLayout struct{}

// Name returns "circular".
func (CircularLayout) Name() string { return AlgorithmCircular }

// SupportsDirected reports true; circular placement simply ignores edges.
func (CircularLayout) SupportsDirected() bool { return true }

// OptimizedForLargeGraphs reports true: placement is a single O(n) pass.
func (CircularLayout) OptimizedForLargeGraphs() bool { return true }

// Apply positions node i at angle 2πi/n on a circle whose radius grows with
// the node count and spacing, each node's rectangle centered on its circle
// point.
func (CircularLayout) Apply(g *graph.Graph, cfg Config) Result {
	cfg = cfg.withDefaults()
	if g.NodeCount() == 0 {
		return Result{Success: true}
	}

	return safeApply(func() Result {
		n := g.NodeCount()

		if n == 1 {
			// Single node: fixed offset from the margin.
			node := g.Nodes()[0]
			g.SetPosition(node.ID, geom.Point{X: cfg.MarginX + 100, Y: cfg.MarginY + 100})
			return Result{
				Success:     true,
				BoundingBox: geom.Point{X: 200 + 2*cfg.MarginX, Y: 200 + 2*cfg.MarginY},
			}
		}

		circumference := float64(n) * cfg.NodeSpacing
		radius := math.Max(circumference/(2*math.Pi), minCircleRadius)

		center := geom.Point{X: cfg.MarginX + radius, Y: cfg.MarginY + radius}

		for i, node := range g.Nodes() {
			angle := 2 * math.Pi * float64(i) / float64(n)
			p := geom.Point{
				X: center.X + radius*math.Cos(angle),
				Y: center.Y + radius*math.Sin(angle),
			}
			// Center the rectangle on its circle point.
			g.SetPosition(node.ID, geom.Point{
				X: p.X - node.Size.X/2,
				Y: p.Y - node.Size.Y/2,
			})
		}

		diameter := 2 * radius
		return Result{
			Success: true,
			BoundingBox: geom.Point{
				X: diameter + 2*cfg.MarginX,
				Y: diameter + 2*cfg.MarginY,
			},
		}
	})
}

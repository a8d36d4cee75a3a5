package layout

import (
	"math"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// Minimum cell dimensions so sparse graphs of tiny nodes still spread out.
const (
	minGridCellWidth  = 80.0
	minGridCellHeight = 60.0
)

// Fallback node dimensions used when every node in the graph reports a zero
// width or height.
const (
	fallbackNodeWidth  = 50.0
	fallbackNodeHeight = 30.0
)

// GridLayout arranges nodes in a regular grid, row-major in insertion order.
// It is deterministic and O(n), and the computed cell size is at least every
// node's footprint, so the result never contains overlapping nodes.
type GridLayout struct{}

// Name returns "grid".
func (GridLayout) Name() string { return AlgorithmGrid }

// SupportsDirected reports true; grid placement simply ignores edges.
func (GridLayout) SupportsDirected() bool { return true }

// OptimizedForLargeGraphs reports true: placement is a single O(n) pass.
func (GridLayout) OptimizedForLargeGraphs() bool { return true }

// Apply positions the nodes of g on a ceil(sqrt(n)) column grid, each node
// centered in its cell, offset by the configured margins.
func (GridLayout) Apply(g *graph.Graph, cfg Config) Result {
	cfg = cfg.withDefaults()
	if g.NodeCount() == 0 {
		return Result{Success: true}
	}

	return safeApply(func() Result {
		n := g.NodeCount()
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		rows := (n + cols - 1) / cols

		cellWidth := math.Max(maxNodeWidth(g)+cfg.NodeSpacing, minGridCellWidth)
		cellHeight := math.Max(maxNodeHeight(g)+cfg.NodeSpacing, minGridCellHeight)

		for i, node := range g.Nodes() {
			row := i / cols
			col := i % cols

			x := cfg.MarginX + float64(col)*cellWidth
			y := cfg.MarginY + float64(row)*cellHeight

			// Center the node within its cell.
			g.SetPosition(node.ID, geom.Point{
				X: x + (cellWidth-node.Size.X)/2,
				Y: y + (cellHeight-node.Size.Y)/2,
			})
		}

		return Result{
			Success: true,
			BoundingBox: geom.Point{
				X: float64(cols)*cellWidth + 2*cfg.MarginX,
				Y: float64(rows)*cellHeight + 2*cfg.MarginY,
			},
		}
	})
}

// maxNodeWidth returns the widest node in the graph, or a fallback when all
// widths are zero.
func maxNodeWidth(g *graph.Graph) float64 {
	var max float64
	for _, n := range g.Nodes() {
		if n.Size.X > max {
			max = n.Size.X
		}
	}
	if max == 0 {
		return fallbackNodeWidth
	}
	return max
}

// maxNodeHeight returns the tallest node in the graph, or a fallback when all
// heights are zero.
func maxNodeHeight(g *graph.Graph) float64 {
	var max float64
	for _, n := range g.Nodes() {
		if n.Size.Y > max {
			max = n.Size.Y
		}
	}
	if max == 0 {
		return fallbackNodeHeight
	}
	return max
}

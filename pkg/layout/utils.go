package layout

import (
	"math"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// BoundingBox returns the width and height of the minimal axis-aligned
// rectangle enclosing all node rectangles. An empty graph has a zero box.
func BoundingBox(g *graph.Graph) geom.Point {
	if g.NodeCount() == 0 {
		return geom.Point{}
	}
	min, max := extents(g)
	return max.Sub(min)
}

// extents returns the min and max corners over all node rectangles.
func extents(g *graph.Graph) (geom.Point, geom.Point) {
	min := geom.Point{X: math.MaxFloat64, Y: math.MaxFloat64}
	max := geom.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64}

	for _, n := range g.Nodes() {
		min.X = math.Min(min.X, n.Position.X)
		min.Y = math.Min(min.Y, n.Position.Y)
		max.X = math.Max(max.X, n.Position.X+n.Size.X)
		max.Y = math.Max(max.Y, n.Position.Y+n.Size.Y)
	}
	return min, max
}

// CenterGraph translates every node so the bounding box is centered on the
// origin.
func CenterGraph(g *graph.Graph) {
	if g.NodeCount() == 0 {
		return
	}

	min, max := extents(g)
	center := geom.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	for _, n := range g.Nodes() {
		g.SetPosition(n.ID, n.Position.Sub(center))
	}
}

// ScaleToFit uniformly scales node positions so the layout fits within
// targetWidth × targetHeight minus the margin on every side. Node sizes are
// never rescaled, so very tight targets can still overflow visually. Empty
// graphs and degenerate (zero-area) bounds are left untouched.
func ScaleToFit(g *graph.Graph, targetWidth, targetHeight, margin float64) {
	if g.NodeCount() == 0 {
		return
	}

	bounds := BoundingBox(g)
	if bounds.X <= 0 || bounds.Y <= 0 {
		return
	}

	scale := math.Min(
		(targetWidth-2*margin)/bounds.X,
		(targetHeight-2*margin)/bounds.Y,
	)

	for _, n := range g.Nodes() {
		g.SetPosition(n.ID, n.Position.Scale(scale).Add(geom.Point{X: margin, Y: margin}))
	}
}

// NodesOverlap reports whether the rectangles of a and b intersect, with an
// optional padding inflating each rectangle.
func NodesOverlap(a, b graph.Node, padding float64) bool {
	return !(a.Position.X+a.Size.X+padding <= b.Position.X ||
		b.Position.X+b.Size.X+padding <= a.Position.X ||
		a.Position.Y+a.Size.Y+padding <= b.Position.Y ||
		b.Position.Y+b.Size.Y+padding <= a.Position.Y)
}

// CountOverlaps returns the number of overlapping node pairs, an O(n²)
// pairwise scan.
func CountOverlaps(g *graph.Graph, padding float64) int {
	nodes := g.Nodes()
	overlaps := 0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if NodesOverlap(*nodes[i], *nodes[j], padding) {
				overlaps++
			}
		}
	}
	return overlaps
}

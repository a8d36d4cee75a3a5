package layout

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// HierarchicalLayout is a Sugiyama-style layered layout for directed acyclic
// graphs. It runs three phases: longest-path layering via a topological
// sweep, barycenter crossing reduction, and top-to-bottom coordinate
// assignment. A cyclic input fails the pass with [ErrCyclicGraph].
//
// For every edge (u,v) of an acyclic input, u ends up strictly above v.
// Crossing reduction is heuristic: it lowers crossings but does not promise
// zero.
type HierarchicalLayout struct{}

// Name returns "hierarchical".
func (HierarchicalLayout) Name() string { return AlgorithmHierarchical }

// SupportsDirected reports true; edge direction defines the layering.
func (HierarchicalLayout) SupportsDirected() bool { return true }

// OptimizedForLargeGraphs reports false; crossing reduction rescans layers
// repeatedly.
func (HierarchicalLayout) OptimizedForLargeGraphs() bool { return false }

// Apply layers the graph, reorders each layer to reduce edge crossings, and
// assigns coordinates left-to-right within layers and top-to-bottom across
// them. On a cyclic graph it returns a failed Result and leaves positions in
// whatever state they were in (no rollback).
func (HierarchicalLayout) Apply(g *graph.Graph, cfg Config) Result {
	cfg = cfg.withDefaults()
	if g.NodeCount() == 0 {
		return Result{Success: true}
	}

	return safeApply(func() Result {
		layers, ok := assignLayers(g)
		if !ok {
			return failed(ErrCyclicGraph)
		}

		reduceCrossings(g, layers, cfg.Iterations/4)
		assignCoordinates(g, layers, cfg)

		return Result{Success: true, BoundingBox: BoundingBox(g)}
	})
}

// layering holds the per-layer node sequences plus the inverse mapping.
// Layer 0 is the top; sequence order within a layer is left-to-right.
type layering struct {
	layers  [][]graph.NodeID
	layerOf map[graph.NodeID]int
}

// assignLayers computes each node's layer as its longest-path distance from
// any in-degree-zero node, using a Kahn's-algorithm sweep. It reports false
// when the sweep processes fewer nodes than exist, which means the graph
// contains a cycle.
func assignLayers(g *graph.Graph) (layering, bool) {
	nodes := g.Nodes()

	inDegree := make(map[graph.NodeID]int, len(nodes))
	for _, n := range nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range g.Edges() {
		if _, ok := inDegree[e.From]; !ok {
			continue // dangling edge source
		}
		if _, ok := inDegree[e.To]; ok {
			inDegree[e.To]++
		}
	}

	layerOf := make(map[graph.NodeID]int, len(nodes))
	queue := make([]graph.NodeID, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
			layerOf[n.ID] = 0
		}
	}

	processed := 0
	maxLayer := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		processed++

		if l := layerOf[curr]; l > maxLayer {
			maxLayer = l
		}

		for _, child := range g.Neighbors(curr) {
			if _, ok := inDegree[child]; !ok {
				continue // dangling edge target
			}
			if l := layerOf[curr] + 1; l > layerOf[child] {
				layerOf[child] = l
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if processed != len(nodes) {
		return layering{}, false
	}

	layers := make([][]graph.NodeID, maxLayer+1)
	for _, n := range nodes { // insertion order seeds the within-layer order
		l := layerOf[n.ID]
		layers[l] = append(layers[l], n.ID)
	}
	return layering{layers: layers, layerOf: layerOf}, true
}

// reduceCrossings runs alternating forward and backward barycenter sweeps
// until a full round produces no reordering, capped at maxRounds.
func reduceCrossings(g *graph.Graph, l layering, maxRounds int) {
	preds := predecessors(g)

	for round := 0; round < maxRounds; round++ {
		changed := false

		// Forward: fix each layer against the one above it.
		for layer := 1; layer < len(l.layers); layer++ {
			if reorderLayer(g, l, preds, layer, true) {
				changed = true
			}
		}

		// Backward: fix each layer against the one below it.
		for layer := len(l.layers) - 2; layer >= 0; layer-- {
			if reorderLayer(g, l, preds, layer, false) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}
}

// predecessors builds the incoming adjacency for every node, skipping edges
// with missing endpoints.
func predecessors(g *graph.Graph) map[graph.NodeID][]graph.NodeID {
	preds := make(map[graph.NodeID][]graph.NodeID)
	for _, e := range g.Edges() {
		if _, ok := g.Node(e.From); !ok {
			continue
		}
		if _, ok := g.Node(e.To); !ok {
			continue
		}
		preds[e.To] = append(preds[e.To], e.From)
	}
	return preds
}

// reorderLayer re-sorts one layer by ascending barycenter and reports
// whether the order changed. Forward sweeps average predecessor positions in
// the layer above; backward sweeps average successor positions in the layer
// below. The sort is stable, so ties keep their current order.
func reorderLayer(g *graph.Graph, l layering, preds map[graph.NodeID][]graph.NodeID, layer int, forward bool) bool {
	seq := l.layers[layer]
	if len(seq) <= 1 {
		return false
	}

	var adjacent []graph.NodeID
	if forward {
		adjacent = l.layers[layer-1]
	} else {
		if layer+1 >= len(l.layers) {
			return false
		}
		adjacent = l.layers[layer+1]
	}

	pos := make(map[graph.NodeID]int, len(adjacent))
	for i, id := range adjacent {
		pos[id] = i
	}

	barycenters := make(map[graph.NodeID]float64, len(seq))
	for _, id := range seq {
		var neighbors []graph.NodeID
		if forward {
			neighbors = preds[id]
		} else {
			neighbors = g.Neighbors(id)
		}

		var indices []float64
		for _, nb := range neighbors {
			if p, ok := pos[nb]; ok {
				indices = append(indices, float64(p))
			}
		}
		if len(indices) == 0 {
			barycenters[id] = 0 // no relevant neighbors
			continue
		}
		barycenters[id] = stat.Mean(indices, nil)
	}

	original := slices.Clone(seq)
	slices.SortStableFunc(seq, func(a, b graph.NodeID) int {
		switch {
		case barycenters[a] < barycenters[b]:
			return -1
		case barycenters[a] > barycenters[b]:
			return 1
		default:
			return 0
		}
	})
	return !slices.Equal(original, seq)
}

// assignCoordinates lays layers out top to bottom. Within a layer, nodes run
// left to right in their current sequence separated by NodeSpacing; each
// layer's y advances by the tallest node of the previous layer plus
// LayerSpacing.
func assignCoordinates(g *graph.Graph, l layering, cfg Config) {
	y := cfg.MarginY

	for _, seq := range l.layers {
		x := cfg.MarginX
		for _, id := range seq {
			node, ok := g.Node(id)
			if !ok {
				continue
			}
			g.SetPosition(id, geom.Point{X: x, Y: y})
			x += node.Size.X + cfg.NodeSpacing
		}
		y += maxLayerHeight(g, seq) + cfg.LayerSpacing
	}
}

// maxLayerHeight returns the tallest node in the layer, with a fallback for
// zero-height nodes.
func maxLayerHeight(g *graph.Graph, seq []graph.NodeID) float64 {
	var max float64
	for _, id := range seq {
		if node, ok := g.Node(id); ok {
			max = math.Max(max, node.Size.Y)
		}
	}
	if max == 0 {
		return fallbackNodeHeight
	}
	return max
}

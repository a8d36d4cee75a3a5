package layout

import (
	"errors"
	"fmt"

	"github.com/flowgraph/flowlayout/pkg/graph"
)

var (
	// ErrUnknownAlgorithm is returned by [Registry.Create] and [New] when no
	// algorithm is registered under the requested name.
	ErrUnknownAlgorithm = errors.New("unknown layout algorithm")

	// ErrNilAlgorithm is returned by [NewWithAlgorithm] for a nil algorithm.
	ErrNilAlgorithm = errors.New("layout algorithm must not be nil")

	// ErrCyclicGraph is returned inside a failed [Result] when
	// [HierarchicalLayout] detects a cycle during layering.
	ErrCyclicGraph = errors.New("graph contains a cycle: not suitable for hierarchical layout")
)

// Algorithm is the contract every layout implements: one Apply operation
// that mutates only node positions and reports the outcome in a [Result].
type Algorithm interface {
	// Apply positions the nodes of g according to cfg. It runs to completion
	// on the calling goroutine and retains no reference to g afterwards.
	Apply(g *graph.Graph, cfg Config) Result

	// Name returns the registry name of the algorithm.
	Name() string

	// SupportsDirected reports whether edge direction is meaningful to the
	// algorithm.
	SupportsDirected() bool

	// OptimizedForLargeGraphs reports whether the algorithm stays cheap as
	// node counts grow (O(n) placement vs. O(n²) simulation).
	OptimizedForLargeGraphs() bool
}

// safeApply runs fn and converts an internal panic into a failed Result, so
// no algorithm ever panics out of Apply.
func safeApply(fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failed(fmt.Errorf("layout failed: %v", r))
		}
	}()
	return fn()
}

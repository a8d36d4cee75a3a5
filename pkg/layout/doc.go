// Package layout positions the nodes of a directed graph on a 2D canvas.
//
// # Overview
//
// Four algorithms are provided, each implementing the [Algorithm] interface:
//
//   - [GridLayout]: row-major grid placement, O(n), deterministic,
//     guaranteed overlap-free.
//   - [CircularLayout]: nodes evenly spaced on a circle, O(n), deterministic.
//   - [ForceDirectedLayout]: Fruchterman-Reingold style annealed force
//     simulation for general graphs, O(n²) per round.
//   - [HierarchicalLayout]: Sugiyama-style layered placement for acyclic
//     graphs - longest-path layering, barycenter crossing reduction, and
//     top-to-bottom coordinate assignment.
//
// Algorithms mutate node positions through [graph.Graph.SetPosition] and
// nothing else: sizes are never changed and the structure is never edited.
//
// # Invocation
//
// Call a concrete algorithm directly:
//
//	res := layout.HierarchicalLayout{}.Apply(g, layout.DefaultConfig())
//
// or select one by name through the facade:
//
//	l, err := layout.New(layout.AlgorithmHierarchical, layout.DefaultConfig())
//	if err != nil { ... }
//	res := l.Apply(g)
//
// Both the registry and the facade report an unknown name with
// [ErrUnknownAlgorithm]; there is a single error discipline for both entry
// points.
//
// # Failure model
//
// Apply never panics out to the caller. The two failure kinds are an
// unsupported topology ([HierarchicalLayout] on a cyclic graph, reported as
// [ErrCyclicGraph]) and an unexpected internal panic, which is recovered and
// converted into a failed [Result]. Degenerate inputs - empty graphs, single
// nodes, disconnected components, self-loops in non-hierarchical algorithms -
// all lay out successfully.
//
// # Reproducibility
//
// Grid and circular placement follow the graph's insertion order, so
// re-running an algorithm on an unmodified graph yields identical positions.
// The force-directed simulation derives its random source from [Config.Seed]
// on every Apply call, so equal seeds give equal layouts.
//
// # Concurrency
//
// Everything here is synchronous and single-threaded: Apply runs to
// completion on the calling goroutine and retains no reference to the graph
// afterwards. Laying out two different graphs from two goroutines is safe;
// sharing one graph is not.
package layout

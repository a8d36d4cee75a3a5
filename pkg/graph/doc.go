// Package graph provides the node/edge container consumed by the layout
// algorithms in [github.com/flowgraph/flowlayout/pkg/layout].
//
// # Overview
//
// A [Graph] holds rectangular nodes keyed by caller-assigned [NodeID]s,
// an ordered sequence of directed [Edge]s, and a derived adjacency list that
// is maintained incrementally on every AddNode/AddEdge. Layout algorithms
// read the structure and mutate node positions through [Graph.SetPosition];
// they never add, remove, or resize nodes.
//
// # Ordering
//
// Node iteration follows insertion order. Grid and circular layouts place
// nodes in iteration order, and hierarchical layout uses it for tie-breaking
// during crossing reduction, so a stable order makes every deterministic
// algorithm reproducible across runs and platforms.
//
// # Mutation
//
// AddNode overwrites on ID collision, and RemoveNode/RemoveEdge support
// editors that delete elements between layout passes. Reads of unknown IDs
// are silent - Node returns false, Neighbors returns nil.
//
// # Serialization
//
// MarshalGraph/UnmarshalGraph and the Read/Write helpers provide a JSON
// format with stable node ordering, used by the flowlayout CLI and suitable
// for editor persistence.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must serialize
// access if multiple goroutines touch the same graph.
package graph

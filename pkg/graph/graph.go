package graph

import (
	"slices"

	"github.com/flowgraph/flowlayout/pkg/geom"
)

// NodeID identifies a node within one Graph. IDs are assigned by the caller
// and are not required to be dense or sequential.
type NodeID uint64

// DefaultNodeSize is the rectangle assigned to nodes created with [NewNode].
// Layout algorithms move rectangles but never resize them, so a node's size
// is fixed for its lifetime.
var DefaultNodeSize = geom.Point{X: 50, Y: 30}

// Node is the unit being positioned: a rectangle identified by an ID.
// Position is the top-left corner; Size is width/height.
type Node struct {
	ID       NodeID     `json:"id"`
	Position geom.Point `json:"position"`
	Size     geom.Point `json:"size"`
}

// NewNode creates a node at the origin with the default size.
func NewNode(id NodeID) Node {
	return Node{ID: id, Size: DefaultNodeSize}
}

// Center returns the midpoint of the node's rectangle.
func (n Node) Center() geom.Point {
	return geom.Point{X: n.Position.X + n.Size.X/2, Y: n.Position.Y + n.Size.Y/2}
}

// Contains reports whether p lies inside the node's rectangle (inclusive).
func (n Node) Contains(p geom.Point) bool {
	return p.X >= n.Position.X && p.X <= n.Position.X+n.Size.X &&
		p.Y >= n.Position.Y && p.Y <= n.Position.Y+n.Size.Y
}

// Edge is a directed connection between two node IDs. The container does not
// validate that the endpoints exist; layout algorithms skip edges whose
// endpoints are missing.
type Edge struct {
	From NodeID `json:"from"`
	To   NodeID `json:"to"`
}

// Graph is the mutable container of nodes, edges, and their derived
// adjacency. Node iteration follows insertion order so layouts are
// reproducible across runs and platforms.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes     map[NodeID]*Node
	order     []NodeID // node IDs in insertion order
	edges     []Edge
	adjacency map[NodeID][]NodeID // nodeID -> outgoing neighbor IDs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID][]NodeID),
	}
}

// AddNode inserts a node, or overwrites the existing node with the same ID.
// An overwritten node keeps its original iteration position. An adjacency
// entry is created so every added node appears in the adjacency list even
// before it has edges.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	node := n
	g.nodes[n.ID] = &node
	if _, ok := g.adjacency[n.ID]; !ok {
		g.adjacency[n.ID] = nil
	}
}

// AddEdge appends a directed edge and records the target in the source's
// adjacency entry. Endpoints are not validated; an adjacency entry is created
// for the target so it is always present as a key.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
	if _, ok := g.adjacency[e.To]; !ok {
		g.adjacency[e.To] = nil
	}
}

// RemoveNode deletes a node along with every edge touching it and its
// adjacency entries. Removing an unknown ID is a no-op.
func (g *Graph) RemoveNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(n NodeID) bool { return n == id })
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.From == id || e.To == id })
	delete(g.adjacency, id)
	for from, targets := range g.adjacency {
		g.adjacency[from] = slices.DeleteFunc(targets, func(t NodeID) bool { return t == id })
	}
}

// RemoveEdge removes the first edge from→to if one exists.
// No error is reported if the edge does not exist.
func (g *Graph) RemoveEdge(from, to NodeID) {
	idx := slices.IndexFunc(g.edges, func(e Edge) bool { return e.From == from && e.To == to })
	if idx < 0 {
		return
	}
	g.edges = slices.Delete(g.edges, idx, idx+1)
	if adj := g.adjacency[from]; adj != nil {
		if i := slices.Index(adj, to); i >= 0 {
			g.adjacency[from] = slices.Delete(adj, i, i+1)
		}
	}
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the node stored in the graph, so
// position reads after a layout pass see the updated coordinates.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The slice contains pointers to
// the stored nodes; treat them as read-only and use SetPosition to move them.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns the outgoing neighbor IDs of a node, or nil for an
// unknown ID. The returned slice is a read-only view.
func (g *Graph) Neighbors(id NodeID) []NodeID { return g.adjacency[id] }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clear removes all nodes and edges.
func (g *Graph) Clear() {
	g.nodes = make(map[NodeID]*Node)
	g.order = nil
	g.edges = nil
	g.adjacency = make(map[NodeID][]NodeID)
}

// SetPosition moves a node to the given position. This is the only mutation
// layout algorithms perform on a graph. Unknown IDs are ignored.
func (g *Graph) SetPosition(id NodeID, p geom.Point) {
	if n, ok := g.nodes[id]; ok {
		n.Position = p
	}
}

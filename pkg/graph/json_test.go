package graph

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flowgraph/flowlayout/pkg/geom"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 2, Position: geom.Point{X: 100, Y: 200}, Size: geom.Point{X: 50, Y: 30}})
	g.AddNode(Node{ID: 1, Position: geom.Point{X: 10, Y: 20}, Size: geom.Point{X: 80, Y: 40}})
	g.AddEdge(Edge{From: 1, To: 2})

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}

	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error: %v", err)
	}

	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Fatalf("round trip: nodes=%d edges=%d, want 2/1", got.NodeCount(), got.EdgeCount())
	}
	n, ok := got.Node(1)
	if !ok {
		t.Fatal("node 1 missing after round trip")
	}
	if n.Position != (geom.Point{X: 10, Y: 20}) || n.Size != (geom.Point{X: 80, Y: 40}) {
		t.Errorf("node 1 = %+v, want position {10 20} size {80 40}", n)
	}
	if got.Edges()[0] != (Edge{From: 1, To: 2}) {
		t.Errorf("edge = %v, want 1→2", got.Edges()[0])
	}
}

func TestMarshalDeterministicOrder(t *testing.T) {
	// Nodes are sorted by ID on output regardless of insertion order.
	a := New()
	a.AddNode(NewNode(3))
	a.AddNode(NewNode(1))
	a.AddNode(NewNode(2))

	b := New()
	b.AddNode(NewNode(1))
	b.AddNode(NewNode(2))
	b.AddNode(NewNode(3))

	da, err := MarshalGraph(a)
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}
	db, err := MarshalGraph(b)
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}
	if !bytes.Equal(da, db) {
		t.Error("marshaled output differs for equal graphs with different insertion order")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := UnmarshalGraph([]byte("{not json")); err == nil {
		t.Error("UnmarshalGraph() with invalid input: want error, got nil")
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	g := New()
	g.AddNode(NewNode(1))
	g.AddNode(NewNode(2))
	g.AddEdge(Edge{From: 1, To: 2})

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile() error: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error: %v", err)
	}
	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("read back: nodes=%d edges=%d, want 2/1", got.NodeCount(), got.EdgeCount())
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ReadGraphFile() on missing file: want error, got nil")
	}
}

func TestWriteGraphWriter(t *testing.T) {
	g := New()
	g.AddNode(NewNode(1))

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"nodes"`) {
		t.Errorf("output missing nodes key: %s", buf.String())
	}

	got, err := ReadGraph(&buf)
	if err != nil {
		t.Fatalf("ReadGraph() error: %v", err)
	}
	if got.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", got.NodeCount())
	}
}

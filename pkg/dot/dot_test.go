package dot

import (
	"strings"
	"testing"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

func buildGraph() *graph.Graph {
	g := graph.New()
	a := graph.NewNode(1)
	a.Position = geom.Point{X: 0, Y: 0}
	b := graph.NewNode(2)
	b.Position = geom.Point{X: 100, Y: 200}
	g.AddNode(a)
	g.AddNode(b)
	g.AddEdge(graph.Edge{From: 1, To: 2})
	return g
}

func TestToDOT(t *testing.T) {
	out := ToDOT(buildGraph(), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`1 [label="1"`,
		`2 [label="2"`,
		"1 -> 2;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "pos=") {
		t.Error("ToDOT() emitted pins without Positioned")
	}
}

func TestToDOTPositioned(t *testing.T) {
	out := ToDOT(buildGraph(), Options{Positioned: true})

	// Node 2 sits at (100,200) with the default 50x30 size, so its center is
	// (125,215); the y axis flips on export.
	if !strings.Contains(out, `pos="125.00,-215.00!"`) {
		t.Errorf("ToDOT() missing pinned position in:\n%s", out)
	}
	if !strings.Contains(out, "fixedsize=true") {
		t.Errorf("ToDOT() missing fixedsize in:\n%s", out)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	out := ToDOT(graph.New(), Options{})
	if !strings.HasPrefix(out, "digraph G {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("ToDOT() on empty graph malformed:\n%s", out)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	a := ToDOT(buildGraph(), Options{Positioned: true})
	b := ToDOT(buildGraph(), Options{Positioned: true})
	if a != b {
		t.Error("ToDOT() output differs across identical graphs")
	}
}

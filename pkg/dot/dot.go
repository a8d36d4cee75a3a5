package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/flowgraph/flowlayout/pkg/graph"
)

// Options configures DOT export.
type Options struct {
	// Positioned pins every node at its current coordinates ("pos=x,y!")
	// so Graphviz draws the precomputed layout instead of running its own.
	// Positioned output must be rendered with the neato engine.
	Positioned bool
}

// pointsPerInch converts node dimensions to Graphviz width/height attributes.
const pointsPerInch = 72.0

// ToDOT converts a graph to Graphviz DOT format. The resulting string can be
// rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, nodeAttrs(n, opts))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *graph.Node, opts Options) string {
	attrs := fmt.Sprintf("label=%q, width=%.3f, height=%.3f, fixedsize=true",
		fmt.Sprintf("%d", n.ID), n.Size.X/pointsPerInch, n.Size.Y/pointsPerInch)

	if opts.Positioned {
		c := n.Center()
		// Graphviz y grows upward; node coordinates grow downward.
		attrs += fmt.Sprintf(", pos=\"%.2f,%.2f!\"", c.X, -c.Y)
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz. Positioned graphs
// (see [Options.Positioned]) must set positioned so the neato engine honors
// the pinned coordinates.
func RenderSVG(ctx context.Context, dotSrc string, positioned bool) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.SVG, positioned)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dotSrc string, positioned bool) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.PNG, positioned)
}

func render(ctx context.Context, dotSrc string, format graphviz.Format, positioned bool) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	if positioned {
		gv.SetLayout(graphviz.NEATO)
	}

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

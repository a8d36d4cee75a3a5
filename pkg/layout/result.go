package layout

import "github.com/flowgraph/flowlayout/pkg/geom"

// Result reports the outcome of one layout pass.
type Result struct {
	// Success is false only for an unsupported topology or a recovered
	// internal panic; degenerate inputs still succeed.
	Success bool

	// Iterations is the number of rounds actually executed by iterative
	// algorithms (always <= Config.Iterations). Zero for one-shot layouts.
	Iterations int

	// Err describes the failure when Success is false, nil otherwise.
	Err error

	// BoundingBox is the width/height of the final node extents, best-effort
	// even when the pass failed part-way.
	BoundingBox geom.Point
}

// failed builds a failure Result carrying err.
func failed(err error) Result {
	return Result{Success: false, Err: err}
}

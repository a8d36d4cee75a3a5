package layout

import (
	"math"
	"math/rand/v2"

	"github.com/flowgraph/flowlayout/pkg/geom"
	"github.com/flowgraph/flowlayout/pkg/graph"
)

// Annealing schedule for the force simulation.
const (
	coolingFactor  = 0.95
	minTemperature = 1.0

	// repulsionRange caps the repulsion neighborhood at a multiple of the
	// optimal edge length; pairs farther apart contribute nothing.
	repulsionRange = 3.0

	// initSpread is the side of the square in which uninitialized nodes are
	// scattered before the simulation starts.
	initSpread = 400.0

	// maxOverlapPasses bounds the post-simulation overlap cleanup.
	maxOverlapPasses = 10
)

// ForceDirectedLayout is a Fruchterman-Reingold style simulation: pairwise
// repulsion, edge attraction, and a cooling displacement cap. It produces
// balanced layouts for general graphs at O(n²) per round, which makes it a
// poor fit for very large graphs.
//
// The random source is derived from Config.Seed on every Apply call, so equal
// seeds give identical layouts and the algorithm value itself carries no
// state.
type ForceDirectedLayout struct{}

// Name returns "force_directed".
func (ForceDirectedLayout) Name() string { return AlgorithmForceDirected }

// SupportsDirected reports true; forces treat edges as symmetric springs, so
// both directed and undirected graphs work.
func (ForceDirectedLayout) SupportsDirected() bool { return true }

// OptimizedForLargeGraphs reports false: each round is O(n²).
func (ForceDirectedLayout) OptimizedForLargeGraphs() bool { return false }

// Apply scatters uninitialized nodes, runs up to cfg.Iterations annealed
// force rounds (stopping early below cfg.ConvergenceThreshold), then
// separates any remaining overlapping pairs.
func (ForceDirectedLayout) Apply(g *graph.Graph, cfg Config) Result {
	cfg = cfg.withDefaults()
	if g.NodeCount() == 0 {
		return Result{Success: true}
	}

	return safeApply(func() Result {
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

		initPositions(g, cfg, rng)
		optimal := optimalEdgeLength(g, cfg)
		rounds := simulate(g, cfg, optimal)
		separateOverlaps(g, cfg, rng)

		return Result{
			Success:     true,
			Iterations:  rounds,
			BoundingBox: BoundingBox(g),
		}
	})
}

// initPositions scatters every node still at the exact origin into a random
// square inside the margins. Nodes legitimately placed at (0,0) are
// indistinguishable from uninitialized ones and get scattered too.
func initPositions(g *graph.Graph, cfg Config, rng *rand.Rand) {
	for _, n := range g.Nodes() {
		if n.Position.X == 0 && n.Position.Y == 0 {
			g.SetPosition(n.ID, geom.Point{
				X: cfg.MarginX + rng.Float64()*initSpread,
				Y: cfg.MarginY + rng.Float64()*initSpread,
			})
		}
	}
}

// optimalEdgeLength estimates the ideal spring length from the area the
// graph wants to occupy.
func optimalEdgeLength(g *graph.Graph, cfg Config) float64 {
	n := g.NodeCount()
	if n <= 1 {
		return cfg.NodeSpacing
	}
	area := float64(n) * cfg.NodeSpacing * cfg.NodeSpacing
	side := math.Sqrt(area)
	return math.Max(cfg.NodeSpacing, side/math.Sqrt(float64(n)))
}

// simulate runs the annealed force loop and returns the number of rounds
// actually executed.
func simulate(g *graph.Graph, cfg Config, optimal float64) int {
	temperature := optimal

	round := 0
	for ; round < cfg.Iterations; round++ {
		forces := make(map[graph.NodeID]geom.Point, g.NodeCount())

		accumulateRepulsion(g, forces, optimal)
		accumulateAttraction(g, forces, optimal)

		maxDisplacement := applyForces(g, forces, temperature)

		temperature = math.Max(minTemperature, temperature*coolingFactor)

		if maxDisplacement < cfg.ConvergenceThreshold {
			round++
			break
		}
	}
	return round
}

// accumulateRepulsion adds L²/d² forces pushing apart every pair of nodes
// within repulsionRange·L of each other.
func accumulateRepulsion(g *graph.Graph, forces map[graph.NodeID]geom.Point, optimal float64) {
	nodes := g.Nodes()
	k := optimal * optimal

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			delta := nodes[i].Center().Sub(nodes[j].Center())
			distance := delta.Magnitude()

			if distance <= 0 || distance >= optimal*repulsionRange {
				continue
			}

			force := delta.Normalize().Scale(k / (distance * distance))
			forces[nodes[i].ID] = forces[nodes[i].ID].Add(force)
			forces[nodes[j].ID] = forces[nodes[j].ID].Sub(force)
		}
	}
}

// accumulateAttraction adds d²/L spring forces pulling edge endpoints
// together. Edges with missing endpoints are skipped.
func accumulateAttraction(g *graph.Graph, forces map[graph.NodeID]geom.Point, optimal float64) {
	for _, e := range g.Edges() {
		from, okFrom := g.Node(e.From)
		to, okTo := g.Node(e.To)
		if !okFrom || !okTo {
			continue
		}

		delta := to.Center().Sub(from.Center())
		distance := delta.Magnitude()
		if distance <= 0 {
			continue
		}

		force := delta.Normalize().Scale(distance * distance / optimal)
		forces[e.From] = forces[e.From].Add(force)
		forces[e.To] = forces[e.To].Sub(force)
	}
}

// applyForces moves each node by its net force, capped at the current
// temperature, and returns the round's maximum displacement.
func applyForces(g *graph.Graph, forces map[graph.NodeID]geom.Point, temperature float64) float64 {
	var maxDisplacement float64

	for id, force := range forces {
		node, ok := g.Node(id)
		if !ok {
			continue
		}

		magnitude := math.Min(force.Magnitude(), temperature)
		if magnitude <= 0 {
			continue
		}

		displacement := force.Normalize().Scale(magnitude)
		g.SetPosition(id, node.Position.Add(displacement))
		maxDisplacement = math.Max(maxDisplacement, magnitude)
	}
	return maxDisplacement
}

// separateOverlaps runs up to maxOverlapPasses pairwise sweeps, pushing
// overlapping rectangles apart along their center-to-center line. Exactly
// coincident centers get a random kick so they have a direction to separate
// along.
func separateOverlaps(g *graph.Graph, cfg Config, rng *rand.Rand) {
	minSeparation := cfg.NodeSpacing / 2

	for pass := 0; pass < maxOverlapPasses; pass++ {
		nodes := g.Nodes()
		overlapping := false

		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if NodesOverlap(*nodes[i], *nodes[j], minSeparation) {
					pushApart(g, nodes[i].ID, nodes[j].ID, minSeparation, rng)
					overlapping = true
				}
			}
		}

		if !overlapping {
			break
		}
	}
}

// pushApart moves two overlapping nodes away from each other along the line
// joining their centers.
func pushApart(g *graph.Graph, a, b graph.NodeID, minSeparation float64, rng *rand.Rand) {
	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return
	}

	delta := na.Center().Sub(nb.Center())
	distance := delta.Magnitude()

	if distance == 0 {
		delta = geom.Point{
			X: rng.Float64()*2*minSeparation - minSeparation,
			Y: rng.Float64()*2*minSeparation - minSeparation,
		}
		distance = delta.Magnitude()
	}
	if distance <= 0 {
		return
	}

	required := (na.Size.X+nb.Size.X)/2 + minSeparation
	separation := delta.Normalize().Scale((required - distance) / 2)

	g.SetPosition(a, na.Position.Add(separation))
	g.SetPosition(b, nb.Position.Sub(separation))
}

package layout

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/flowgraph/flowlayout/pkg/graph"
	"github.com/flowgraph/flowlayout/pkg/observability"
)

// Registry names of the builtin algorithms.
const (
	AlgorithmGrid          = "grid"
	AlgorithmCircular      = "circular"
	AlgorithmForceDirected = "force_directed"
	AlgorithmHierarchical  = "hierarchical"
)

// Factory constructs a fresh Algorithm instance.
type Factory func() Algorithm

// Registry maps algorithm names to factories. A freshly created Registry
// already knows the four builtin algorithms; callers can register their own
// on top.
//
// Registry is not safe for concurrent mutation; register algorithms up front.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry pre-populated with the builtin algorithms.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(AlgorithmGrid, func() Algorithm { return GridLayout{} })
	r.Register(AlgorithmCircular, func() Algorithm { return CircularLayout{} })
	r.Register(AlgorithmForceDirected, func() Algorithm { return ForceDirectedLayout{} })
	r.Register(AlgorithmHierarchical, func() Algorithm { return HierarchicalLayout{} })
	return r
}

// Register adds or replaces a factory under the given name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Create instantiates the algorithm registered under name.
// Returns ErrUnknownAlgorithm for names nothing was registered under.
func (r *Registry) Create(name string) (Algorithm, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return f(), nil
}

// Algorithms returns the registered names in sorted order.
func (r *Registry) Algorithms() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// defaultRegistry backs the package-level Create/Algorithms and the Layout
// facade.
var defaultRegistry = NewRegistry()

// Create instantiates a builtin algorithm by name.
func Create(name string) (Algorithm, error) { return defaultRegistry.Create(name) }

// Algorithms returns the builtin algorithm names in sorted order.
func Algorithms() []string { return defaultRegistry.Algorithms() }

// Layout is the single-call facade: one algorithm plus one config.
type Layout struct {
	algorithm Algorithm
	config    Config
}

// New creates a facade around the named builtin algorithm.
// Returns ErrUnknownAlgorithm for an unknown name - the same error discipline
// as [Registry.Create].
func New(name string, cfg Config) (*Layout, error) {
	alg, err := Create(name)
	if err != nil {
		return nil, err
	}
	return &Layout{algorithm: alg, config: cfg}, nil
}

// NewWithAlgorithm creates a facade around an existing algorithm instance.
func NewWithAlgorithm(alg Algorithm, cfg Config) (*Layout, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	return &Layout{algorithm: alg, config: cfg}, nil
}

// Apply runs the wrapped algorithm against g, emitting observability hooks
// around the pass.
func (l *Layout) Apply(g *graph.Graph) Result {
	observability.Layout().OnLayoutStart(l.algorithm.Name(), g.NodeCount(), g.EdgeCount())
	start := time.Now()

	res := l.algorithm.Apply(g, l.config)

	observability.Layout().OnLayoutComplete(l.algorithm.Name(), time.Since(start), res.Success, res.Iterations)
	return res
}

// Config returns the facade's configuration.
func (l *Layout) Config() Config { return l.config }

// AlgorithmName returns the wrapped algorithm's registry name.
func (l *Layout) AlgorithmName() string { return l.algorithm.Name() }

// SupportsDirected reports whether the wrapped algorithm uses edge direction.
func (l *Layout) SupportsDirected() bool { return l.algorithm.SupportsDirected() }

// OptimizedForLargeGraphs reports whether the wrapped algorithm stays cheap
// as graphs grow.
func (l *Layout) OptimizedForLargeGraphs() bool { return l.algorithm.OptimizedForLargeGraphs() }

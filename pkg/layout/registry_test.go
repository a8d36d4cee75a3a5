package layout

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/flowgraph/flowlayout/pkg/graph"
	"github.com/flowgraph/flowlayout/pkg/observability"
)

func TestRegistryCreate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: AlgorithmGrid, want: "grid"},
		{name: AlgorithmCircular, want: "circular"},
		{name: AlgorithmForceDirected, want: "force_directed"},
		{name: AlgorithmHierarchical, want: "hierarchical"},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := r.Create(tt.name)
			if err != nil {
				t.Fatalf("Create(%q) error: %v", tt.name, err)
			}
			if alg.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", alg.Name(), tt.want)
			}
		})
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("springy")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Create() error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRegistryAlgorithmsSorted(t *testing.T) {
	got := NewRegistry().Algorithms()
	want := []string{"circular", "force_directed", "grid", "hierarchical"}
	if !slices.Equal(got, want) {
		t.Errorf("Algorithms() = %v, want %v", got, want)
	}
}

func TestRegistryRegisterCustom(t *testing.T) {
	r := NewRegistry()
	r.Register("grid", func() Algorithm { return CircularLayout{} }) // override

	alg, err := r.Create("grid")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if alg.Name() != "circular" {
		t.Errorf("override not applied: Name() = %q", alg.Name())
	}
}

func TestNewUnknownName(t *testing.T) {
	// The facade reports the same error as the registry - one discipline.
	_, err := New("springy", DefaultConfig())
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("New() error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNewWithAlgorithmNil(t *testing.T) {
	_, err := NewWithAlgorithm(nil, DefaultConfig())
	if !errors.Is(err, ErrNilAlgorithm) {
		t.Errorf("NewWithAlgorithm(nil) error = %v, want ErrNilAlgorithm", err)
	}
}

func TestLayoutFacadeApply(t *testing.T) {
	l, err := New(AlgorithmGrid, DefaultConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	g := graph.New()
	g.AddNode(graph.NewNode(1))
	g.AddNode(graph.NewNode(2))

	res := l.Apply(g)
	if !res.Success {
		t.Fatalf("Apply() failed: %v", res.Err)
	}
	if l.AlgorithmName() != "grid" {
		t.Errorf("AlgorithmName() = %q, want grid", l.AlgorithmName())
	}
	if !l.SupportsDirected() || !l.OptimizedForLargeGraphs() {
		t.Error("grid capability flags wrong")
	}
}

type countingHooks struct {
	starts, completes int
	lastSuccess       bool
}

func (c *countingHooks) OnLayoutStart(string, int, int) { c.starts++ }
func (c *countingHooks) OnLayoutComplete(_ string, _ time.Duration, success bool, _ int) {
	c.completes++
	c.lastSuccess = success
}

func TestLayoutFacadeEmitsHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	hooks := &countingHooks{}
	observability.SetLayoutHooks(hooks)

	l, _ := New(AlgorithmCircular, DefaultConfig())
	g := graph.New()
	g.AddNode(graph.NewNode(1))
	l.Apply(g)

	if hooks.starts != 1 || hooks.completes != 1 {
		t.Errorf("hooks: starts=%d completes=%d, want 1/1", hooks.starts, hooks.completes)
	}
	if !hooks.lastSuccess {
		t.Error("hooks recorded failure for a successful pass")
	}
}

package layout

// Default tunables applied when the corresponding Config field is zero.
const (
	DefaultNodeSpacing          = 80.0
	DefaultLayerSpacing         = 100.0
	DefaultIterations           = 100
	DefaultConvergenceThreshold = 1.0
	DefaultMarginX              = 50.0
	DefaultMarginY              = 50.0
	DefaultSeed                 = uint64(42)
)

// Config carries the tunables shared by all layout algorithms. The zero
// value is usable: algorithms substitute the package defaults for zero
// fields, so callers only set what they care about.
//
// The toml tags allow loading a Config from a file, as the flowlayout CLI
// does with its --config flag.
type Config struct {
	// NodeSpacing is the minimum distance between nodes.
	NodeSpacing float64 `toml:"node_spacing"`

	// LayerSpacing is the vertical distance between layers (hierarchical only).
	LayerSpacing float64 `toml:"layer_spacing"`

	// Iterations caps the number of rounds for iterative algorithms.
	Iterations int `toml:"iterations"`

	// ConvergenceThreshold stops the force simulation early once the largest
	// per-round displacement falls below it.
	ConvergenceThreshold float64 `toml:"convergence_threshold"`

	// MarginX and MarginY offset the layout from the canvas origin.
	MarginX float64 `toml:"margin_x"`
	MarginY float64 `toml:"margin_y"`

	// PreserveAspectRatio is honored by scale-to-fit post-processing.
	PreserveAspectRatio bool `toml:"preserve_aspect_ratio"`

	// Seed feeds the force-directed random source. Equal seeds produce equal
	// layouts; there is no hidden per-instance generator state.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		NodeSpacing:          DefaultNodeSpacing,
		LayerSpacing:         DefaultLayerSpacing,
		Iterations:           DefaultIterations,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		MarginX:              DefaultMarginX,
		MarginY:              DefaultMarginY,
		PreserveAspectRatio:  true,
		Seed:                 DefaultSeed,
	}
}

// withDefaults returns c with zero fields replaced by package defaults.
// Every algorithm normalizes its config this way at the top of Apply.
func (c Config) withDefaults() Config {
	if c.NodeSpacing == 0 {
		c.NodeSpacing = DefaultNodeSpacing
	}
	if c.LayerSpacing == 0 {
		c.LayerSpacing = DefaultLayerSpacing
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.ConvergenceThreshold == 0 {
		c.ConvergenceThreshold = DefaultConvergenceThreshold
	}
	if c.MarginX == 0 {
		c.MarginX = DefaultMarginX
	}
	if c.MarginY == 0 {
		c.MarginY = DefaultMarginY
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	return c
}

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/flowgraph/flowlayout/pkg/layout"
)

// loadConfig reads a layout configuration from a TOML file. An empty path
// returns the package defaults. Fields absent from the file stay zero and
// the algorithms substitute their defaults, so partial files work.
func loadConfig(path string) (layout.Config, error) {
	if path == "" {
		return layout.DefaultConfig(), nil
	}

	var cfg layout.Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return layout.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

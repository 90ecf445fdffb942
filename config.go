package numgroup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/numgroup/internal/grouping"
)

// Config carries the tunables of the grouping rule.
type Config struct {
	// Widths holds the required separator group width per numeral system.
	Widths grouping.Widths
}

// DefaultConfig returns the standard configuration: group width 4 for
// binary, octal and hexadecimal literals, 3 for decimal ones.
func DefaultConfig() *Config {
	return &Config{Widths: grouping.DefaultWidths()}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// An empty path means pure defaults. Expected layout:
//
//	widths:
//	  decimal: 3
//	  hexadecimal: 4
//	  octal: 4
//	  binary: 4
//
// Systems missing from the file keep their default width.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var raw struct {
		Widths map[string]int `yaml:"widths"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	overrides := grouping.Widths{}
	for name, width := range raw.Widths {
		var sys grouping.NumeralSystem
		if err := sys.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}

		if width <= 0 {
			return nil, fmt.Errorf("parse config %q: group width for %s must be positive, got %d", path, sys, width)
		}

		overrides[sys] = width
	}

	cfg.Widths = cfg.Widths.Merge(overrides)

	return cfg, nil
}

package diagram

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Strategy selects how node positions are resolved.
type Strategy string

const (
	// StrategyGrid is the deterministic fallback, always available.
	StrategyGrid Strategy = "grid"
	// StrategyExternal delegates to an external graph-layout adapter,
	// falling back to the grid when the adapter's result is incomplete.
	StrategyExternal Strategy = "external"
)

// Direction controls which axis the grid strategy fills first.
type Direction string

const (
	// DirectionRight fills columns left to right, wrapping to new rows.
	DirectionRight Direction = "right"
	// DirectionDown fills rows top to bottom, wrapping to new columns.
	DirectionDown Direction = "down"
)

// Config is the layout configuration record supplied by the caller.
type Config struct {
	Strategy  Strategy  `yaml:"strategy"`
	Spacing   float64   `yaml:"spacing"`
	Padding   float64   `yaml:"padding"`
	Direction Direction `yaml:"direction"`
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing: grid strategy, 40 units between cells, 20 units of group padding.
func DefaultConfig() Config {
	return Config{
		Strategy:  StrategyGrid,
		Spacing:   40,
		Padding:   20,
		Direction: DirectionRight,
	}
}

// ParseConfig unmarshals a YAML configuration record, filling in defaults
// for omitted fields. The pipeline itself performs no I/O; this is a
// convenience for embedding applications that carry layout settings in
// their own config files.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing layout config: %w", err)
	}
	if cfg.Strategy != StrategyGrid && cfg.Strategy != StrategyExternal {
		return Config{}, fmt.Errorf("unknown layout strategy %q", cfg.Strategy)
	}
	if cfg.Direction != DirectionRight && cfg.Direction != DirectionDown {
		return Config{}, fmt.Errorf("unknown layout direction %q", cfg.Direction)
	}
	if cfg.Spacing < 0 {
		return Config{}, fmt.Errorf("spacing must be non-negative, got %v", cfg.Spacing)
	}
	if cfg.Padding < 0 {
		return Config{}, fmt.Errorf("padding must be non-negative, got %v", cfg.Padding)
	}
	return cfg, nil
}

// Package config provides YAML-based match configuration loading for the
// mazectf engine.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can use values like "3s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"500ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MatchConfig contains all tunable parameters of a match.
type MatchConfig struct {
	Rounds     int         `yaml:"rounds"`
	Seed       int64       `yaml:"seed"` // 0 means pick from the clock
	KillPoints int         `yaml:"kill_points"`
	Timeout    MoveTimeout `yaml:"move_timeout"`
	Noise      NoiseConfig `yaml:"noise"`
}

// MoveTimeout bounds each agent's GetMove call.
type MoveTimeout struct {
	Enabled bool     `yaml:"enabled"`
	Budget  Duration `yaml:"budget"`
}

// NoiseConfig is the fog-of-war policy. The perturbation radius and the
// triggering sight distance are deliberately configurable; there is no
// single authoritative value for them.
type NoiseConfig struct {
	Enabled       bool `yaml:"enabled"`
	SightDistance int  `yaml:"sight_distance"`
	NoiseRadius   int  `yaml:"noise_radius"`
}

// DefaultMatchConfig returns the hardcoded fallback configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Rounds:     300,
		Seed:       0,
		KillPoints: 5,
		Timeout: MoveTimeout{
			Enabled: true,
			Budget:  Duration(3 * time.Second),
		},
		Noise: NoiseConfig{
			Enabled:       false,
			SightDistance: 5,
			NoiseRadius:   5,
		},
	}
}

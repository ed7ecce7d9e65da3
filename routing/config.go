package routing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable engine parameters.
type Config struct {
	// GridResolution is the size of one routing grid cell in world units.
	// Higher values mean a coarser grid and faster pathfinding.
	GridResolution float64 `yaml:"grid_resolution"`

	// SnapDistance is the Manhattan radius, in world units, within which a
	// dragged connection end snaps onto a component grip.
	SnapDistance float64 `yaml:"snap_distance"`

	// StubLength is the base length of the straight stub leaving an anchor
	// before any start/end adjustment is applied.
	StubLength float64 `yaml:"stub_length"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		GridResolution: 10,
		SnapDistance:   20,
		StubLength:     20,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.GridResolution <= 0 {
		return fmt.Errorf("grid_resolution must be positive, got %v", c.GridResolution)
	}
	if c.SnapDistance < 0 {
		return fmt.Errorf("snap_distance must not be negative, got %v", c.SnapDistance)
	}
	if c.StubLength < 0 {
		return fmt.Errorf("stub_length must not be negative, got %v", c.StubLength)
	}
	return nil
}

// LoadConfig loads engine configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// SaveConfig writes the configuration to a YAML file.
func SaveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: an 11x11 board stepping
// every 0.16 seconds.
func Default() Config {
	return Config{
		Width:               11,
		Height:              11,
		CellSize:            2,
		TickIntervalSeconds: 0.16,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// Package config provides YAML-based board configuration loading for the
// snake game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Limits for configurable values.
const (
	MinBoardSize    = 3
	MaxBoardSize    = 99
	MinCellSize     = 1
	MaxCellSize     = 4
	MinTickInterval = 0.01 // seconds
	MaxTickInterval = 5.0  // seconds
)

// Config contains the startup configuration of a game.
type Config struct {
	Width               int     `yaml:"width"`                 // Board width in cells
	Height              int     `yaml:"height"`                // Board height in cells
	CellSize            int     `yaml:"cell_size"`             // Terminal columns per cell
	TickIntervalSeconds float64 `yaml:"tick_interval_seconds"` // Seconds between moves
}

// TickInterval returns the step interval as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalSeconds * float64(time.Second))
}

// Bounds returns the board rectangle centered on the origin.
func (c Config) Bounds() core.Bounds {
	return core.CenteredBounds(c.Width, c.Height)
}

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var errs []error
	if c.Width < MinBoardSize || c.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("width %d out of range [%d, %d]", c.Width, MinBoardSize, MaxBoardSize))
	}
	if c.Height < MinBoardSize || c.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("height %d out of range [%d, %d]", c.Height, MinBoardSize, MaxBoardSize))
	}
	if c.CellSize < MinCellSize || c.CellSize > MaxCellSize {
		errs = append(errs, fmt.Errorf("cell_size %d out of range [%d, %d]", c.CellSize, MinCellSize, MaxCellSize))
	}
	if math.IsNaN(c.TickIntervalSeconds) ||
		c.TickIntervalSeconds < MinTickInterval || c.TickIntervalSeconds > MaxTickInterval {
		errs = append(errs, fmt.Errorf("tick_interval_seconds %g out of range [%g, %g]",
			c.TickIntervalSeconds, MinTickInterval, MaxTickInterval))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

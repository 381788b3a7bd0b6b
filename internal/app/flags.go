package app

import (
	"flag"
	"fmt"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows    int
	Width   int
	TPS     int
	SPS     int
	Seed    int64
	Density float64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 50, Width: 800, TPS: 60, SPS: 240, Seed: 42, Density: 0.25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows and columns")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "search expansions per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random barrier scatter")
	fs.Float64Var(&c.Density, "density", c.Density, "barrier density for scatter, 0..1")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable debug logging")
}

// Normalize validates the grid geometry and shrinks Width to a multiple of
// Rows so cells render at an exact integer size.
func (c *Config) Normalize() error {
	if c.Rows < 2 {
		return fmt.Errorf("app: need at least 2 rows, got %d", c.Rows)
	}
	gap := c.Width / c.Rows
	if gap < 2 {
		return fmt.Errorf("app: width %d leaves cells under 2px on %d rows", c.Width, c.Rows)
	}
	c.Width = gap * c.Rows
	return nil
}

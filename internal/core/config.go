package core

import (
	"flag"
	"fmt"
	"image/color"
	"time"
)

// Bounds enforced on user-supplied configuration. The simulation core
// assumes they hold; Validate rejects anything outside them before a value
// reaches the engine.
const (
	MinDimension = 10
	MaxDimension = 200

	MinInterval = 15 * time.Millisecond
	MaxInterval = 2000 * time.Millisecond

	MinCellSize = 1
	MaxCellSize = 64
)

// Config carries the user-tunable parameters. Height, Width and Interval
// drive the simulation; the remaining fields are presentation-only and are
// ignored by the engine.
type Config struct {
	Height   int
	Width    int
	Interval time.Duration

	CellSize   int
	AliveColor color.RGBA
	DeadColor  color.RGBA
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Height:     60,
		Width:      80,
		Interval:   120 * time.Millisecond,
		CellSize:   8,
		AliveColor: color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		DeadColor:  color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff},
	}
}

// Bind attaches the configuration to the provided FlagSet. Colors are bound
// as #RRGGBB strings and parsed during Validate via the flag.Value wrappers.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while playing")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixel size of one cell")
	fs.Var(colorFlag{&c.AliveColor}, "alive-color", "alive cell color as #RRGGBB")
	fs.Var(colorFlag{&c.DeadColor}, "dead-color", "dead cell color as #RRGGBB")
}

// Validate reports the first bound violation, or nil if the configuration
// is usable.
func (c Config) Validate() error {
	if c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("height %d outside [%d, %d]", c.Height, MinDimension, MaxDimension)
	}
	if c.Width < MinDimension || c.Width > MaxDimension {
		return fmt.Errorf("width %d outside [%d, %d]", c.Width, MinDimension, MaxDimension)
	}
	if c.Interval < MinInterval || c.Interval > MaxInterval {
		return fmt.Errorf("interval %s outside [%s, %s]", c.Interval, MinInterval, MaxInterval)
	}
	if c.CellSize < MinCellSize || c.CellSize > MaxCellSize {
		return fmt.Errorf("cell size %d outside [%d, %d]", c.CellSize, MinCellSize, MaxCellSize)
	}
	return nil
}

// colorFlag adapts a color field to the flag.Value interface.
type colorFlag struct {
	dst *color.RGBA
}

func (f colorFlag) String() string {
	if f.dst == nil {
		return ""
	}
	return FormatHexColor(*f.dst)
}

func (f colorFlag) Set(s string) error {
	c, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*f.dst = c
	return nil
}

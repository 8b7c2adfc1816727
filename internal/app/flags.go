package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale int
	TPS   int
	Seed  int64

	Width          int
	Height         int
	Radius         int
	MaxObjects     int
	InitialObjects int
	Shapes         string
	WrapNoise      bool
	Debug          bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:          1,
		TPS:            20,
		Seed:           42,
		Width:          800,
		Height:         600,
		Radius:         6,
		MaxObjects:     8,
		InitialObjects: 3,
		Shapes:         "circle,square,triangle,ellipse",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.IntVar(&c.Radius, "radius", c.Radius, "object radius in pixels")
	fs.IntVar(&c.MaxObjects, "max-objects", c.MaxObjects, "object budget")
	fs.IntVar(&c.InitialObjects, "initial-objects", c.InitialObjects, "objects placed on reset")
	fs.StringVar(&c.Shapes, "shapes", c.Shapes, "comma-separated shape set")
	fs.BoolVar(&c.WrapNoise, "wrap-noise", c.WrapNoise, "legacy 8-bit noise wraparound instead of clipping")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

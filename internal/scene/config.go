package scene

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape enumerates the primitives the generator can rasterize.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeEllipse
)

var shapeNames = [...]string{"circle", "square", "triangle", "ellipse"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// ParseShapes converts a comma-separated list of shape names into a shape
// set, ignoring unrecognized entries.
func ParseShapes(list string) []Shape {
	var shapes []Shape
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		for i, known := range shapeNames {
			if name == known {
				shapes = append(shapes, Shape(i))
				break
			}
		}
	}
	return shapes
}

// ErrConfig marks configuration validation failures. All of them surface at
// construction or Initialize time, never inside Step.
var ErrConfig = errors.New("scene: invalid configuration")

// Config controls frame dimensions, background noise, object dynamics and
// periodic object injection.
type Config struct {
	Width  int
	Height int

	Seed int64

	NoiseMean float64
	NoiseStd  float64

	ObjectIntensity   uint8
	ObjectRadius      int
	MaxObjects        int
	InitialObjects    int
	VelocityMin       int
	VelocityMax       int
	Shapes            []Shape
	InjectionInterval int

	// WrapNoise reproduces the legacy 8-bit wraparound of out-of-range
	// noise samples instead of clipping them. Off by default.
	WrapNoise bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             800,
		Height:            600,
		Seed:              1337,
		NoiseMean:         120,
		NoiseStd:          40,
		ObjectIntensity:   250,
		ObjectRadius:      6,
		MaxObjects:        8,
		InitialObjects:    3,
		VelocityMin:       -5,
		VelocityMax:       5,
		Shapes:            []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeEllipse},
		InjectionInterval: 5,
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrConfig, "frame dimensions %dx%d", c.Width, c.Height)
	}
	if c.VelocityMin > c.VelocityMax {
		return errors.Wrapf(ErrConfig, "velocity range [%d,%d]", c.VelocityMin, c.VelocityMax)
	}
	short := c.Width
	if c.Height < short {
		short = c.Height
	}
	if c.ObjectRadius <= 0 || c.ObjectRadius >= short/2 {
		return errors.Wrapf(ErrConfig, "object radius %d does not fit a %dx%d frame", c.ObjectRadius, c.Width, c.Height)
	}
	if c.MaxObjects < 0 {
		return errors.Wrapf(ErrConfig, "max objects %d", c.MaxObjects)
	}
	if c.InitialObjects < 0 || c.InitialObjects > c.MaxObjects {
		return errors.Wrapf(ErrConfig, "initial object count %d exceeds max objects %d", c.InitialObjects, c.MaxObjects)
	}
	if len(c.Shapes) == 0 {
		return errors.Wrap(ErrConfig, "empty shape set")
	}
	if c.InjectionInterval <= 0 {
		return errors.Wrapf(ErrConfig, "injection interval %d", c.InjectionInterval)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_mean"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.NoiseMean = parsed
		}
	}
	if v, ok := cfg["noise_std"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.NoiseStd = parsed
		}
	}
	if v, ok := cfg["object_intensity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.ObjectIntensity = uint8(parsed)
		}
	}
	if v, ok := cfg["object_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ObjectRadius = parsed
		}
	}
	if v, ok := cfg["max_objects"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxObjects = parsed
		}
	}
	if v, ok := cfg["initial_objects"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.InitialObjects = parsed
		}
	}
	if v, ok := cfg["velocity_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.VelocityMin = parsed
		}
	}
	if v, ok := cfg["velocity_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.VelocityMax = parsed
		}
	}
	if v, ok := cfg["shapes"]; ok {
		if shapes := ParseShapes(v); len(shapes) > 0 {
			c.Shapes = shapes
		}
	}
	if v, ok := cfg["injection_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InjectionInterval = parsed
		}
	}
	if v, ok := cfg["wrap_noise"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.WrapNoise = parsed
		}
	}
	return c
}

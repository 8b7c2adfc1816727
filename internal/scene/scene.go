// Package scene owns the synthetic sensor simulation: primitive shapes
// moving over Gaussian background noise, rasterized one frame per tick.
package scene

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"radar-sim/internal/core"
)

// Object is one simulated target. Position and velocity are integer pixel
// quantities; the shape never changes after creation.
type Object struct {
	ID     uuid.UUID
	X, Y   int
	VX, VY int
	Shape  Shape
}

var _ core.Source = (*Generator)(nil)

// Generator owns the simulation state and produces one frame per tick.
// The object list is append-only: targets enter the scene over time and
// never leave it.
type Generator struct {
	cfg     Config
	rng     *core.RNG
	noise   distuv.Normal
	objects []Object
	tick    int
}

// New validates the configuration and returns a generator seeded and
// populated with the configured number of initial objects.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg}
	g.Reset(cfg.Seed)
	return g, nil
}

// Name identifies the frame source.
func (g *Generator) Name() string { return "radar" }

// Size returns the frame dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Tick returns the number of completed steps since the last reset.
func (g *Generator) Tick() int { return g.tick }

// Objects returns a copy of the current object states.
func (g *Generator) Objects() []Object {
	out := make([]Object, len(g.objects))
	copy(out, g.objects)
	return out
}

// Reset discards the simulation state wholesale, reseeds the random source
// and places the configured number of initial objects.
func (g *Generator) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.noise = g.rng.Normal(g.cfg.NoiseMean, g.cfg.NoiseStd)
	g.objects = g.objects[:0]
	g.tick = 0
	g.place(g.cfg.InitialObjects)
}

// Initialize replaces the current objects with count freshly randomized
// ones without reseeding. It fails when count exceeds the object budget.
func (g *Generator) Initialize(count int) error {
	if count < 0 || count > g.cfg.MaxObjects {
		return errors.Wrapf(ErrConfig, "initial object count %d exceeds max objects %d", count, g.cfg.MaxObjects)
	}
	g.objects = g.objects[:0]
	g.tick = 0
	g.place(count)
	return nil
}

// Step advances every object by its velocity, bounces at the borders, and
// rasterizes the scene over fresh background noise. Every
// InjectionInterval ticks one new object enters, up to MaxObjects.
func (g *Generator) Step() *core.Frame {
	g.tick++

	frame := core.NewFrame(g.cfg.Width, g.cfg.Height)
	g.fillNoise(frame)

	for i := range g.objects {
		g.move(&g.objects[i])
		drawShape(frame, g.objects[i], g.cfg.ObjectRadius, g.cfg.ObjectIntensity)
	}

	if g.tick%g.cfg.InjectionInterval == 0 && len(g.objects) < g.cfg.MaxObjects {
		g.objects = append(g.objects, g.newObject())
	}
	return frame
}

// Generate re-initializes with initialCount objects and returns the next
// n frames. Each frame is an independent snapshot owned by the caller.
func (g *Generator) Generate(n, initialCount int) ([]*core.Frame, error) {
	if err := g.Initialize(initialCount); err != nil {
		return nil, err
	}
	frames := make([]*core.Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, g.Step())
	}
	return frames, nil
}

func (g *Generator) place(count int) {
	for i := 0; i < count; i++ {
		g.objects = append(g.objects, g.newObject())
	}
}

// newObject samples position within [radius, dim-radius-1] on both axes,
// velocity within the configured range, and a shape from the set.
func (g *Generator) newObject() Object {
	r := g.cfg.ObjectRadius
	return Object{
		ID:    uuid.New(),
		X:     g.rng.IntRange(r, g.cfg.Width-r-1),
		Y:     g.rng.IntRange(r, g.cfg.Height-r-1),
		VX:    g.rng.IntRange(g.cfg.VelocityMin, g.cfg.VelocityMax),
		VY:    g.rng.IntRange(g.cfg.VelocityMin, g.cfg.VelocityMax),
		Shape: g.cfg.Shapes[g.rng.Intn(len(g.cfg.Shapes))],
	}
}

func (g *Generator) fillNoise(f *core.Frame) {
	wrap := g.cfg.WrapNoise
	for i := range f.Pix {
		n := int(g.noise.Rand())
		if wrap {
			f.Pix[i] = uint8(n)
			continue
		}
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		f.Pix[i] = uint8(n)
	}
}

// move applies the velocity and bounces off the frame borders: when the
// shape extent leaves the frame on an axis the velocity flips and the
// position clamps back into [radius, dim-radius-1].
func (g *Generator) move(o *Object) {
	r := g.cfg.ObjectRadius
	o.X += o.VX
	o.Y += o.VY
	if o.X-r < 0 || o.X+r >= g.cfg.Width {
		o.VX = -o.VX
		o.X = clamp(o.X, r, g.cfg.Width-r-1)
	}
	if o.Y-r < 0 || o.Y+r >= g.cfg.Height {
		o.VY = -o.VY
		o.Y = clamp(o.Y, r, g.cfg.Height-r-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

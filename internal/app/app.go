//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"radar-sim/internal/core"
	"radar-sim/internal/pipeline"
	"radar-sim/internal/render"
	"radar-sim/internal/scene"
	"radar-sim/internal/ui"
)

var (
	maskOn  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	maskOff = color.RGBA{A: 0xff}
)

type viewMode int

const (
	viewLive viewMode = iota
	viewMask
	viewLabels
)

// Game adapts the scene generator and the detection pipeline to the
// ebiten.Game interface. Keys mirror the legacy viewer buttons:
// Space pauses, O applies Otsu and freezes on the mask, L shows the
// colorized label map, N regenerates with a fresh seed, R replays the
// current seed, Q quits.
type Game struct {
	gen     *scene.Generator
	pipe    *pipeline.Pipeline
	painter *render.GridPainter
	hud     *ui.HUD

	frame  *core.Frame
	result pipeline.Result
	mode   viewMode

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided generator and pipeline.
func New(gen *scene.Generator, pipe *pipeline.Pipeline, scale int, seed int64) *Game {
	size := gen.Size()
	return &Game{
		gen:     gen,
		pipe:    pipe,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed and
// resumes the live view.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.frame = nil
	g.result = pipeline.Result{}
	g.mode = viewLive
	g.paused = false
}

// Update handles input and advances the simulation while live.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && g.frame != nil && g.mode == viewLive {
		// Apply Otsu on the frozen snapshot, like the legacy button.
		g.result = g.pipe.Detect(g.frame)
		g.mode = viewMask
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) && g.frame != nil {
		if g.result.Labels == nil {
			g.result = g.pipe.Detect(g.frame)
		}
		g.mode = viewLabels
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	if g.mode == viewLive && !g.paused {
		g.frame = g.gen.Step()
	}
	return nil
}

// Draw renders the active view with the HUD status line on top.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	switch g.mode {
	case viewMask:
		render.FillMaskRGBA(g.painter.Buf(), g.result.Mask, maskOn, maskOff)
	case viewLabels:
		render.FillLabelRGBA(g.painter.Buf(), g.result.Labels, render.LabelPalette(g.result.Count))
	default:
		render.FillGrayRGBA(g.painter.Buf(), g.frame.Pix)
	}
	g.painter.Blit(screen, g.scale)
	g.hud.Draw(screen, g.status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) status() string {
	switch g.mode {
	case viewMask:
		return fmt.Sprintf("otsu threshold=%d (display %d) blobs=%d",
			g.result.Threshold.Threshold, g.result.Threshold.DisplayThreshold, g.result.Count)
	case viewLabels:
		return fmt.Sprintf("labels=%d", g.result.Count)
	default:
		return fmt.Sprintf("tick=%d objects=%d", g.gen.Tick(), len(g.gen.Objects()))
	}
}

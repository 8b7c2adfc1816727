package scene

import (
	"testing"

	"radar-sim/internal/core"
)

func countIntensity(f *core.Frame, v uint8) int {
	n := 0
	for _, p := range f.Pix {
		if p == v {
			n++
		}
	}
	return n
}

func rowWidth(f *core.Frame, y int, v uint8) int {
	n := 0
	for x := 0; x < f.W; x++ {
		if f.At(x, y) == v {
			n++
		}
	}
	return n
}

func TestSquareCoversFullExtent(t *testing.T) {
	f := core.NewFrame(32, 32)
	drawShape(f, Object{X: 16, Y: 16, Shape: ShapeSquare}, 4, 250)

	want := 9 * 9 // side 2r+1
	if got := countIntensity(f, 250); got != want {
		t.Fatalf("square covers %d pixels, expected %d", got, want)
	}
	if f.At(12, 12) != 250 || f.At(20, 20) != 250 {
		t.Fatal("square corners not painted")
	}
	if f.At(11, 16) == 250 || f.At(21, 16) == 250 {
		t.Fatal("square spilled past its extent")
	}
}

func TestCircleIsSymmetricAndBounded(t *testing.T) {
	f := core.NewFrame(32, 32)
	r := 5
	drawShape(f, Object{X: 16, Y: 16, Shape: ShapeCircle}, r, 250)

	if rowWidth(f, 16, 250) != 2*r+1 {
		t.Fatalf("widest row %d pixels, expected %d", rowWidth(f, 16, 250), 2*r+1)
	}
	for dy := 1; dy <= r; dy++ {
		if rowWidth(f, 16-dy, 250) != rowWidth(f, 16+dy, 250) {
			t.Fatalf("circle asymmetric at dy=%d", dy)
		}
	}
	square := (2*r + 1) * (2*r + 1)
	if got := countIntensity(f, 250); got >= square {
		t.Fatalf("circle covers %d pixels, expected fewer than the %d of its bounding square", got, square)
	}
}

func TestTriangleNarrowsTowardApex(t *testing.T) {
	f := core.NewFrame(32, 32)
	r := 6
	drawShape(f, Object{X: 16, Y: 16, Shape: ShapeTriangle}, r, 250)

	if w := rowWidth(f, 16-r, 250); w != 1 {
		t.Fatalf("apex row %d pixels wide, expected 1", w)
	}
	if w := rowWidth(f, 16+r, 250); w != 2*r+1 {
		t.Fatalf("base row %d pixels wide, expected %d", w, 2*r+1)
	}
	prev := 0
	for dy := -r; dy <= r; dy++ {
		w := rowWidth(f, 16+dy, 250)
		if w < prev {
			t.Fatalf("triangle width shrank from %d to %d at dy=%d", prev, w, dy)
		}
		prev = w
	}
}

func TestEllipseIsHalfAsTall(t *testing.T) {
	f := core.NewFrame(32, 32)
	r := 6
	drawShape(f, Object{X: 16, Y: 16, Shape: ShapeEllipse}, r, 250)

	if w := rowWidth(f, 16, 250); w != 2*r+1 {
		t.Fatalf("center row %d pixels wide, expected %d", w, 2*r+1)
	}
	b := r / 2
	if rowWidth(f, 16-b-1, 250) != 0 || rowWidth(f, 16+b+1, 250) != 0 {
		t.Fatalf("ellipse taller than semi-axis %d", b)
	}
}

func TestDrawClipsAtBorders(t *testing.T) {
	for _, shape := range []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeEllipse} {
		f := core.NewFrame(16, 16)
		drawShape(f, Object{X: 0, Y: 0, Shape: shape}, 5, 250)
		drawShape(f, Object{X: 15, Y: 15, Shape: shape}, 5, 250)
		if countIntensity(f, 250) == 0 {
			t.Fatalf("%v at the border painted nothing", shape)
		}
	}
}

func TestLaterObjectsDrawOverEarlier(t *testing.T) {
	cfg := quietConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.MaxObjects = 2
	cfg.ObjectIntensity = 250

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.objects = append(g.objects,
		Object{X: 16, Y: 16, Shape: ShapeSquare},
		Object{X: 16, Y: 16, Shape: ShapeSquare},
	)
	f := g.Step()
	if f.At(16, 16) != 250 {
		t.Fatal("overlapping objects must composite in insertion order")
	}
}

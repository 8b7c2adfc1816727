package scene

import (
	"math"

	"radar-sim/internal/core"
)

// drawShape rasterizes one object at the given intensity, clipped to the
// frame bounds. Later objects overwrite earlier ones where they overlap.
func drawShape(f *core.Frame, o Object, radius int, intensity uint8) {
	switch o.Shape {
	case ShapeSquare:
		fillSquare(f, o.X, o.Y, radius, intensity)
	case ShapeTriangle:
		fillTriangle(f, o.X, o.Y, radius, intensity)
	case ShapeEllipse:
		fillEllipse(f, o.X, o.Y, radius, intensity)
	default:
		fillCircle(f, o.X, o.Y, radius, intensity)
	}
}

// fillRow paints [x0, x1] on row y, clipped to the frame.
func fillRow(f *core.Frame, x0, x1, y int, v uint8) {
	if y < 0 || y >= f.H {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= f.W {
		x1 = f.W - 1
	}
	row := y * f.W
	for x := x0; x <= x1; x++ {
		f.Pix[row+x] = v
	}
}

func fillCircle(f *core.Frame, cx, cy, r int, v uint8) {
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		hw := int(math.Sqrt(float64(rr - dy*dy)))
		fillRow(f, cx-hw, cx+hw, cy+dy, v)
	}
}

// fillSquare paints an axis-aligned square of side 2r centered on (cx, cy).
func fillSquare(f *core.Frame, cx, cy, r int, v uint8) {
	for dy := -r; dy <= r; dy++ {
		fillRow(f, cx-r, cx+r, cy+dy, v)
	}
}

// fillTriangle paints an upward isosceles triangle with apex (cx, cy-r)
// and base corners (cx±r, cy+r): base 2r wide, height 2r.
func fillTriangle(f *core.Frame, cx, cy, r int, v uint8) {
	for dy := -r; dy <= r; dy++ {
		hw := (dy + r) / 2
		fillRow(f, cx-hw, cx+hw, cy+dy, v)
	}
}

// fillEllipse paints an ellipse with horizontal semi-axis r and vertical
// semi-axis r/2, matching the legacy axes=(radius, radius/2) convention.
func fillEllipse(f *core.Frame, cx, cy, r int, v uint8) {
	b := r / 2
	if b < 1 {
		b = 1
	}
	for dy := -b; dy <= b; dy++ {
		hw := int(float64(r) * math.Sqrt(1-float64(dy*dy)/float64(b*b)))
		fillRow(f, cx-hw, cx+hw, cy+dy, v)
	}
}

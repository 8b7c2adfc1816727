package core

// Frame is one H×W snapshot of 8-bit intensity samples in row-major order.
// Frames are values: once produced by the generator they are never mutated.
type Frame struct {
	W, H int
	Pix  []uint8
}

// NewFrame allocates a zeroed frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// At returns the intensity at (x, y).
func (f *Frame) At(x, y int) uint8 { return f.Pix[y*f.W+x] }

// Set writes the intensity at (x, y).
func (f *Frame) Set(x, y int, v uint8) { f.Pix[y*f.W+x] = v }

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{W: f.W, H: f.H, Pix: pix}
}

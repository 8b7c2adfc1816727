package core

// Mask is an H×W foreground/background grid in row-major order.
type Mask struct {
	W, H int
	Bits []bool
}

// NewMask allocates an all-background mask with the given dimensions.
func NewMask(w, h int) *Mask {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (m *Mask) Index(x, y int) int { return y*m.W + x }

// At reports whether (x, y) is foreground.
func (m *Mask) At(x, y int) bool { return m.Bits[y*m.W+x] }

// Set marks (x, y) as foreground or background.
func (m *Mask) Set(x, y int, v bool) { m.Bits[y*m.W+x] = v }

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	bits := make([]bool, len(m.Bits))
	copy(bits, m.Bits)
	return &Mask{W: m.W, H: m.H, Bits: bits}
}

// LabelMap assigns a component identifier to every pixel. Zero is
// background; component labels are dense, starting at 1.
type LabelMap struct {
	W, H   int
	Labels []int
}

// NewLabelMap allocates an all-background label map.
func NewLabelMap(w, h int) *LabelMap {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &LabelMap{W: w, H: h, Labels: make([]int, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (l *LabelMap) Index(x, y int) int { return y*l.W + x }

// At returns the label at (x, y).
func (l *LabelMap) At(x, y int) int { return l.Labels[y*l.W+x] }

// Max returns the highest label present. For a dense map this is the
// component count; an all-background map yields 0.
func (l *LabelMap) Max() int {
	max := 0
	for _, v := range l.Labels {
		if v > max {
			max = v
		}
	}
	return max
}

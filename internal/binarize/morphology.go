package binarize

import "radar-sim/internal/core"

// diskKernel is a disk inscribed in a 4×4 neighborhood, anchored at (1,1).
// Offsets are (dx, dy) pairs; the four corners are off.
var diskKernel = [...][2]int{
	{0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0}, {2, 0},
	{-1, 1}, {0, 1}, {1, 1}, {2, 1},
	{0, 2}, {1, 2},
}

// Erode keeps a pixel only when the whole structuring element sits on
// foreground. Positions where the element leaves the frame erode away.
func Erode(m *core.Mask) *core.Mask {
	out := core.NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.Bits[y*m.W+x] {
				continue
			}
			keep := true
			for _, d := range diskKernel {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H || !m.Bits[ny*m.W+nx] {
					keep = false
					break
				}
			}
			out.Bits[y*m.W+x] = keep
		}
	}
	return out
}

// Dilate grows the foreground by the reflected structuring element.
func Dilate(m *core.Mask) *core.Mask {
	out := core.NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			for _, d := range diskKernel {
				nx, ny := x-d[0], y-d[1]
				if nx >= 0 && ny >= 0 && nx < m.W && ny < m.H && m.Bits[ny*m.W+nx] {
					out.Bits[y*m.W+x] = true
					break
				}
			}
		}
	}
	return out
}

// Open runs erosion then dilation, removing specks smaller than the disk
// while keeping larger regions roughly intact.
func Open(m *core.Mask) *core.Mask {
	return Dilate(Erode(m))
}

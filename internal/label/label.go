// Package label partitions binary masks into 8-connected components.
package label

import "radar-sim/internal/core"

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Components assigns dense labels 1..K to the 8-connected foreground
// regions of the mask. Pixels are scanned in raster order and each newly
// found region is flooded breadth-first, so numbering is deterministic
// and reproducible for a given mask.
func Components(m *core.Mask) (*core.LabelMap, int) {
	lm := core.NewLabelMap(m.W, m.H)
	next := 0
	queue := make([][2]int, 0, 64)

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			idx := y*m.W + x
			if !m.Bits[idx] || lm.Labels[idx] != 0 {
				continue
			}
			next++
			lm.Labels[idx] = next
			queue = append(queue[:0], [2]int{x, y})
			for head := 0; head < len(queue); head++ {
				p := queue[head]
				for _, d := range neighbors8 {
					nx, ny := p[0]+d[0], p[1]+d[1]
					if nx < 0 || ny < 0 || nx >= m.W || ny >= m.H {
						continue
					}
					nidx := ny*m.W + nx
					if !m.Bits[nidx] || lm.Labels[nidx] != 0 {
						continue
					}
					lm.Labels[nidx] = next
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}
	return lm, next
}

// PositiveComponents labels a raw frame directly, treating any strictly
// positive intensity as foreground. No threshold selection or cleaning is
// applied; this is the quick counting mode and deliberately uses a
// different binarization convention than the Otsu path.
func PositiveComponents(f *core.Frame) (*core.LabelMap, int) {
	m := core.NewMask(f.W, f.H)
	for i, v := range f.Pix {
		m.Bits[i] = v > 0
	}
	return Components(m)
}

// Count returns the number of distinct non-zero labels in the map, 0 for
// a nil or all-background map.
func Count(lm *core.LabelMap) int {
	if lm == nil {
		return 0
	}
	return lm.Max()
}

// ExtractBlobs returns one mask per label 1..K, each holding exactly the
// pixels carrying that label. Their union reconstructs the foreground.
func ExtractBlobs(lm *core.LabelMap) []*core.Mask {
	count := lm.Max()
	if count == 0 {
		return nil
	}
	masks := make([]*core.Mask, count)
	for i := range masks {
		masks[i] = core.NewMask(lm.W, lm.H)
	}
	for i, l := range lm.Labels {
		if l > 0 {
			masks[l-1].Bits[i] = true
		}
	}
	return masks
}

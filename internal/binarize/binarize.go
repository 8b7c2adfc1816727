// Package binarize turns intensity frames into cleaned binary masks.
package binarize

import "radar-sim/internal/core"

// Apply marks every pixel strictly brighter than threshold as foreground.
func Apply(f *core.Frame, threshold int) *core.Mask {
	m := core.NewMask(f.W, f.H)
	for i, v := range f.Pix {
		m.Bits[i] = int(v) > threshold
	}
	return m
}

// Binarize thresholds the frame and cleans the result with one
// morphological opening.
func Binarize(f *core.Frame, threshold int) *core.Mask {
	return Open(Apply(f, threshold))
}

// Package otsu selects binarization thresholds by maximizing the
// between-class variance of an intensity histogram.
package otsu

import "radar-sim/internal/core"

// Histogram holds per-intensity pixel counts for one frame, together with
// the totals the threshold scan needs. It is rebuilt per call and owned by
// the caller.
type Histogram struct {
	Counts         [256]int
	Pixels         int
	TotalIntensity int64
}

// BuildHistogram counts intensity occurrences over the whole frame.
func BuildHistogram(f *core.Frame) *Histogram {
	h := &Histogram{Pixels: len(f.Pix)}
	for _, v := range f.Pix {
		h.Counts[v]++
	}
	for i, c := range h.Counts {
		h.TotalIntensity += int64(i) * int64(c)
	}
	return h
}

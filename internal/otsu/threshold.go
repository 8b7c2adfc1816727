package otsu

import (
	"math"

	"radar-sim/internal/core"
)

// Result is a selected threshold. DisplayThreshold doubles the raw value;
// the legacy readout reported the threshold that way and it is preserved
// as a named derived value with no further meaning.
type Result struct {
	Threshold        int
	DisplayThreshold int
}

// Select picks the threshold with maximal between-class variance.
//
// The scan preserves the legacy order exactly: the variance is evaluated
// at the current candidate before the pointer advances past empty buckets,
// and ties keep the first (lowest) candidate. The running-mean updates use
// the already-updated weights, as the legacy scan did. Degenerate inputs
// (empty frame, single populated bucket) yield threshold 0.
func (h *Histogram) Select() Result {
	if h.Pixels == 0 {
		return Result{}
	}

	best := math.Inf(-1)
	result := 0
	meanBG, weightBG := 0.0, 0.0
	meanFG := float64(h.TotalIntensity) / float64(h.Pixels)
	weightFG := float64(h.Pixels)

	t := 0
	for t < 255 {
		diff := meanFG - meanBG
		variance := weightBG * weightFG * diff * diff
		if variance > best {
			best = variance
			result = t
		}

		for t < 255 && h.Counts[t] == 0 {
			t++
		}
		if t >= 255 {
			break
		}

		c := float64(h.Counts[t])
		weightBG += c
		weightFG -= c
		if weightFG <= 0 {
			// The legacy scan divides by zero once the last populated
			// bucket moves to the background side; nothing after this
			// point can raise the variance.
			break
		}
		meanBG = (meanBG*weightBG + c*float64(t)) / weightBG
		meanFG = (meanFG*weightFG - c*float64(t)) / weightFG
		t++
	}
	return Result{Threshold: result, DisplayThreshold: result * 2}
}

// Select builds the histogram for f and picks its threshold.
func Select(f *core.Frame) Result {
	return BuildHistogram(f).Select()
}

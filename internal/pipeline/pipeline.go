// Package pipeline chains threshold selection, binarization and component
// labeling over frame snapshots.
package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"radar-sim/internal/binarize"
	"radar-sim/internal/core"
	"radar-sim/internal/label"
	"radar-sim/internal/otsu"
)

// Result carries everything one detection pass produced.
type Result struct {
	Threshold otsu.Result
	Raw       *core.Mask // thresholded, before cleaning
	Mask      *core.Mask // after morphological opening
	Labels    *core.LabelMap
	Count     int
	Blobs     []label.Blob
}

// Pipeline runs the detection stages over individual frames. It holds no
// per-frame state; callers must hand in snapshots that no concurrent
// generator Step mutates (generator frames already satisfy this).
type Pipeline struct {
	log zerolog.Logger
}

// New returns a pipeline logging through the provided logger.
func New(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// Detect runs the full pass: Otsu threshold selection, strict
// binarization, one opening, then 8-connected labeling and blob
// extraction.
func (p *Pipeline) Detect(f *core.Frame) Result {
	start := time.Now()

	thr := otsu.Select(f)
	raw := binarize.Apply(f, thr.Threshold)
	mask := binarize.Open(raw)
	labels, count := label.Components(mask)
	blobs := label.Blobs(labels)

	p.log.Debug().
		Int("threshold", thr.Threshold).
		Int("display_threshold", thr.DisplayThreshold).
		Int("foreground", mask.Count()).
		Int("blobs", count).
		Dur("elapsed", time.Since(start)).
		Msg("detection pass")

	return Result{
		Threshold: thr,
		Raw:       raw,
		Mask:      mask,
		Labels:    labels,
		Count:     count,
		Blobs:     blobs,
	}
}

// QuickCount labels every strictly positive pixel of the raw frame
// directly, skipping threshold selection and cleaning.
func (p *Pipeline) QuickCount(f *core.Frame) (*core.LabelMap, int) {
	labels, count := label.PositiveComponents(f)
	p.log.Debug().Int("blobs", count).Msg("quick label pass")
	return labels, count
}

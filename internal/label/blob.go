package label

import (
	"github.com/google/uuid"

	"radar-sim/internal/core"
)

// Rect is an axis-aligned bounding box with inclusive corners.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the horizontal extent in pixels.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the vertical extent in pixels.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Blob is one extracted component with the geometry the HUD and exporter
// consume. The ID is a handle for downstream consumers; the pipeline never
// re-identifies blobs across frames.
type Blob struct {
	ID        uuid.UUID
	Label     int
	Mask      *core.Mask
	Bounds    Rect
	Area      int
	CentroidX float64
	CentroidY float64
}

// Blobs extracts every component of the label map together with its mask,
// bounds, area and centroid, ordered by label.
func Blobs(lm *core.LabelMap) []Blob {
	count := lm.Max()
	if count == 0 {
		return nil
	}
	blobs := make([]Blob, count)
	for i := range blobs {
		blobs[i] = Blob{
			ID:     uuid.New(),
			Label:  i + 1,
			Mask:   core.NewMask(lm.W, lm.H),
			Bounds: Rect{MinX: lm.W, MinY: lm.H, MaxX: -1, MaxY: -1},
		}
	}

	for y := 0; y < lm.H; y++ {
		for x := 0; x < lm.W; x++ {
			l := lm.Labels[y*lm.W+x]
			if l == 0 {
				continue
			}
			b := &blobs[l-1]
			b.Mask.Bits[y*lm.W+x] = true
			if x < b.Bounds.MinX {
				b.Bounds.MinX = x
			}
			if x > b.Bounds.MaxX {
				b.Bounds.MaxX = x
			}
			if y < b.Bounds.MinY {
				b.Bounds.MinY = y
			}
			if y > b.Bounds.MaxY {
				b.Bounds.MaxY = y
			}
			b.Area++
			b.CentroidX += float64(x)
			b.CentroidY += float64(y)
		}
	}

	for i := range blobs {
		if blobs[i].Area > 0 {
			blobs[i].CentroidX /= float64(blobs[i].Area)
			blobs[i].CentroidY /= float64(blobs[i].Area)
		}
	}
	return blobs
}

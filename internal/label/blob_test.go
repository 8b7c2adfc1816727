package label

import (
	"testing"

	"radar-sim/internal/core"
)

func TestBlobGeometry(t *testing.T) {
	m := core.NewMask(16, 16)
	block(m, 5, 8, 8, 10) // 4x3 rectangle

	lm, count := Components(m)
	if count != 1 {
		t.Fatalf("count %d, expected 1", count)
	}

	blobs := Blobs(lm)
	if len(blobs) != 1 {
		t.Fatalf("%d blobs, expected 1", len(blobs))
	}

	b := blobs[0]
	if b.Label != 1 {
		t.Fatalf("label %d, expected 1", b.Label)
	}
	if b.Area != 12 {
		t.Fatalf("area %d, expected 12", b.Area)
	}
	want := Rect{MinX: 5, MinY: 8, MaxX: 8, MaxY: 10}
	if b.Bounds != want {
		t.Fatalf("bounds %+v, expected %+v", b.Bounds, want)
	}
	if b.Bounds.Width() != 4 || b.Bounds.Height() != 3 {
		t.Fatalf("extent %dx%d, expected 4x3", b.Bounds.Width(), b.Bounds.Height())
	}
	if b.CentroidX != 6.5 || b.CentroidY != 9 {
		t.Fatalf("centroid (%f,%f), expected (6.5,9)", b.CentroidX, b.CentroidY)
	}
	if b.Mask.Count() != 12 {
		t.Fatalf("blob mask has %d pixels, expected 12", b.Mask.Count())
	}
}

func TestBlobIDsAreUnique(t *testing.T) {
	m := core.NewMask(12, 12)
	block(m, 0, 0, 1, 1)
	block(m, 6, 6, 7, 7)

	lm, _ := Components(m)
	blobs := Blobs(lm)
	if len(blobs) != 2 {
		t.Fatalf("%d blobs, expected 2", len(blobs))
	}
	if blobs[0].ID == blobs[1].ID {
		t.Fatal("blob IDs must be unique")
	}
}

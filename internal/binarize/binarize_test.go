package binarize

import (
	"testing"

	"radar-sim/internal/core"
)

func block(m *core.Mask, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Set(x, y, true)
		}
	}
}

func TestApplyIsStrict(t *testing.T) {
	f := core.NewFrame(3, 1)
	f.Pix[0] = 99
	f.Pix[1] = 100
	f.Pix[2] = 101

	m := Apply(f, 100)
	if m.Bits[0] || m.Bits[1] {
		t.Fatal("pixels at or below the threshold must be background")
	}
	if !m.Bits[2] {
		t.Fatal("pixel above the threshold must be foreground")
	}
}

func TestApplyOnBrightBlock(t *testing.T) {
	f := core.NewFrame(8, 8)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.Set(x, y, 200)
		}
	}
	m := Apply(f, 1)
	if m.Count() != 9 {
		t.Fatalf("raw mask has %d foreground pixels, expected 9", m.Count())
	}
}

func TestOpenRemovesSpecks(t *testing.T) {
	m := core.NewMask(20, 20)
	m.Set(10, 10, true) // isolated pixel
	block(m, 2, 2, 4, 4) // 3x3, smaller than the 4x4 disk

	opened := Open(m)
	if opened.Count() != 0 {
		t.Fatalf("opening left %d pixels of sub-kernel specks", opened.Count())
	}
}

func TestOpenKeepsLargeRegions(t *testing.T) {
	m := core.NewMask(20, 20)
	block(m, 4, 4, 13, 13) // 10x10

	opened := Open(m)
	if opened.Count() == 0 {
		t.Fatal("opening erased a region larger than the kernel")
	}
	for i, b := range opened.Bits {
		if b && !m.Bits[i] {
			t.Fatalf("opening grew the foreground at index %d", i)
		}
	}
}

func TestErodeThenDilateComposition(t *testing.T) {
	m := core.NewMask(16, 16)
	block(m, 3, 3, 12, 12)

	composed := Dilate(Erode(m))
	opened := Open(m)
	for i := range composed.Bits {
		if composed.Bits[i] != opened.Bits[i] {
			t.Fatalf("Open diverges from erosion-then-dilation at index %d", i)
		}
	}
}

func TestBinarizeCleansNoise(t *testing.T) {
	f := core.NewFrame(24, 24)
	for y := 6; y <= 15; y++ {
		for x := 6; x <= 15; x++ {
			f.Set(x, y, 200)
		}
	}
	f.Set(0, 0, 200)   // isolated speck
	f.Set(20, 20, 200) // isolated speck

	m := Binarize(f, 100)
	if m.At(0, 0) || m.At(20, 20) {
		t.Fatal("isolated specks must not survive the opening")
	}
	if m.Count() == 0 {
		t.Fatal("the large block must survive the opening")
	}
}

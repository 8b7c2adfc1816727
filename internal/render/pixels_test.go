package render

import (
	"testing"

	"radar-sim/internal/core"
)

func TestLabelPaletteDistinct(t *testing.T) {
	palette := LabelPalette(8)
	if len(palette) != 8 {
		t.Fatalf("palette size %d, expected 8", len(palette))
	}
	seen := map[[3]uint8]bool{}
	for _, c := range palette {
		key := [3]uint8{c.R, c.G, c.B}
		if seen[key] {
			t.Fatalf("palette color %v repeats", key)
		}
		seen[key] = true
		if c.A != 0xff {
			t.Fatal("palette colors must be opaque")
		}
	}
	if LabelPalette(0) != nil {
		t.Fatal("empty palette expected for zero components")
	}
}

func TestFillGrayRGBA(t *testing.T) {
	pix := []uint8{0, 128, 255}
	buf := make([]byte, 4*len(pix))
	FillGrayRGBA(buf, pix)

	for i, v := range pix {
		base := i * 4
		if buf[base] != v || buf[base+1] != v || buf[base+2] != v {
			t.Fatalf("pixel %d: got (%d,%d,%d), expected gray %d", i, buf[base], buf[base+1], buf[base+2], v)
		}
		if buf[base+3] != 0xff {
			t.Fatalf("pixel %d not opaque", i)
		}
	}
}

func TestFillLabelRGBABackgroundIsBlack(t *testing.T) {
	lm := core.NewLabelMap(2, 1)
	lm.Labels[1] = 1
	buf := make([]byte, 8)
	FillLabelRGBA(buf, lm, LabelPalette(1))

	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 0xff {
		t.Fatal("background pixel must be opaque black")
	}
	if buf[4] == 0 && buf[5] == 0 && buf[6] == 0 {
		t.Fatal("labeled pixel must take a palette color")
	}
}

func TestImagesMatchGridDimensions(t *testing.T) {
	f := core.NewFrame(7, 5)
	if b := FrameImage(f).Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Fatalf("frame image %dx%d, expected 7x5", b.Dx(), b.Dy())
	}

	m := core.NewMask(7, 5)
	m.Set(3, 2, true)
	img := MaskImage(m)
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Fatalf("mask image %dx%d, expected 7x5", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(3, 2).RGBA()
	if r == 0 || g == 0 || bl == 0 {
		t.Fatal("foreground mask pixel must be white")
	}

	lm := core.NewLabelMap(4, 4)
	if b := LabelImage(lm).Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("label image %dx%d, expected 4x4", b.Dx(), b.Dy())
	}
}

package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"radar-sim/internal/core"
)

var (
	colorWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBlack = color.RGBA{A: 0xff}
)

// FillGrayRGBA converts intensity samples into opaque gray pixels in buf.
func FillGrayRGBA(buf []byte, pix []uint8) {
	for i, v := range pix {
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xff
	}
}

// FillMaskRGBA paints foreground and background pixels with the given
// colors.
func FillMaskRGBA(buf []byte, m *core.Mask, on, off color.RGBA) {
	for i, b := range m.Bits {
		base := i * 4
		col := off
		if b {
			col = on
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillLabelRGBA paints each component with its palette color (label 1 maps
// to palette[0]); background stays opaque black. Labels beyond the palette
// reuse its last entry.
func FillLabelRGBA(buf []byte, lm *core.LabelMap, palette []color.RGBA) {
	for i, l := range lm.Labels {
		base := i * 4
		if l <= 0 || len(palette) == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0xff
			continue
		}
		idx := l - 1
		if idx >= len(palette) {
			idx = len(palette) - 1
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// LabelPalette returns count visually distinct colors spread around the
// hue wheel.
func LabelPalette(count int) []color.RGBA {
	if count <= 0 {
		return nil
	}
	palette := make([]color.RGBA, count)
	for i := range palette {
		c := colorful.Hsv(float64(i)*360.0/float64(count), 0.85, 1.0)
		r, g, b := c.RGB255()
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return palette
}

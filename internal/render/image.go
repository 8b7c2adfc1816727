package render

import (
	"image"

	"radar-sim/internal/core"
)

// FrameImage renders the frame as an opaque grayscale RGBA image.
func FrameImage(f *core.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	FillGrayRGBA(img.Pix, f.Pix)
	return img
}

// MaskImage renders the mask white-on-black.
func MaskImage(m *core.Mask) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	FillMaskRGBA(img.Pix, m, colorWhite, colorBlack)
	return img
}

// LabelImage renders each component in a distinct color on black.
func LabelImage(lm *core.LabelMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, lm.W, lm.H))
	FillLabelRGBA(img.Pix, lm, LabelPalette(lm.Max()))
	return img
}

package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// VerticalGradient fills dst with a linear gradient running from top at the
// first row to bottom at the last row. Colors are blended in RGB space.
func VerticalGradient(dst *image.RGBA, top, bottom colorful.Color) {
	b := dst.Bounds()
	h := b.Dy()
	w := b.Dx()
	if w <= 0 || h <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r, g, bl := top.BlendRgb(bottom, t).Clamped().RGB255()

		row := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]
		row[0], row[1], row[2], row[3] = r, g, bl, 0xFF
		// Double the filled prefix until the row is complete.
		for filled := 4; filled < w*4; filled *= 2 {
			copy(row[filled:w*4], row[:filled])
		}
	}
}

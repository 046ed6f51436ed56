package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// shadowDownscale is how much a shadow layer is shrunk before blurring.
// Large blur radii on full-size layers dominate render time otherwise.
const shadowDownscale = 4

// Shadow renders the soft shadow of a w×h rounded rectangle.
//
// The returned layer is larger than the shape by pad pixels on every side so
// the blur has room to fade out. To cast the shadow of a shape whose top-left
// corner is at p with offset (dx, dy), composite the layer at
// p + (dx, dy) - (pad, pad).
func Shadow(w, h int, radius, blurRadius float64, c color.Color) (image.Image, int, error) {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{}), 0, nil
	}

	pad := int(math.Ceil(blurRadius * 2))
	lw, lh := w+2*pad, h+2*pad

	scale := 1
	if blurRadius >= 2*shadowDownscale {
		scale = shadowDownscale
	}
	sw := (lw + scale - 1) / scale
	sh := (lh + scale - 1) / scale
	s := float64(scale)

	dc := gg.NewContext(sw, sh)
	defer dc.Close()

	dc.SetColor(c)
	dc.DrawRoundedRectangle(float64(pad)/s, float64(pad)/s, float64(w)/s, float64(h)/s,
		clampRadius(radius/s, float64(w)/s, float64(h)/s))
	if err := dc.Fill(); err != nil {
		return nil, 0, fmt.Errorf("failed to fill shadow shape: %w", err)
	}

	layer := dc.Image()
	if blurRadius > 0 {
		layer = blur.Gaussian(layer, blurRadius/s)
	}
	if scale == 1 {
		return layer, pad, nil
	}

	return imaging.Resize(layer, lw, lh, imaging.Linear), pad, nil
}

// Blur applies a Gaussian blur of the given radius to src.
func Blur(src image.Image, radius float64) image.Image {
	if radius <= 0 {
		return src
	}
	return blur.Gaussian(src, radius)
}

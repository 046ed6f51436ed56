package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

// FillRoundedRect returns a w×h layer holding an antialiased rounded
// rectangle that covers the whole layer, filled with c. The radius is clamped
// to half the shorter side.
func FillRoundedRect(w, h int, radius float64, c color.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), nil
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.SetColor(c)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), clampRadius(radius, float64(w), float64(h)))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill rounded rect: %w", err)
	}

	return asRGBA(dc.Image()), nil
}

// StrokeRoundedRect returns a w×h layer holding the outline of a rounded
// rectangle. The stroke of the given width lies entirely inside the layer.
func StrokeRoundedRect(w, h int, radius, lineWidth float64, c color.Color) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), nil
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	half := lineWidth / 2
	rw := float64(w) - lineWidth
	rh := float64(h) - lineWidth
	if rw <= 0 || rh <= 0 {
		return asRGBA(dc.Image()), nil
	}

	dc.SetColor(c)
	dc.SetLineWidth(lineWidth)
	dc.DrawRoundedRectangle(half, half, rw, rh, clampRadius(radius-half, rw, rh))
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("failed to stroke rounded rect: %w", err)
	}

	return asRGBA(dc.Image()), nil
}

// ClipRounded returns a copy of src whose corners outside a rounded
// rectangle of the given radius are transparent.
func ClipRounded(src image.Image, radius float64) (*image.RGBA, error) {
	b := src.Bounds()
	mask, err := FillRoundedRect(b.Dx(), b.Dy(), radius, color.White)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), src, b.Min, mask, image.Point{}, draw.Src)
	return dst, nil
}

func clampRadius(r, w, h float64) float64 {
	if r < 0 {
		return 0
	}
	return math.Min(r, math.Min(w, h)/2)
}

func asRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

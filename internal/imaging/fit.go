package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// FitInside returns the largest rectangle with the aspect ratio of size that
// fits inside box. The result is centered horizontally and anchored to the
// top of box. It is empty when box or size is empty.
func FitInside(size image.Point, box image.Rectangle) image.Rectangle {
	bw, bh := box.Dx(), box.Dy()
	if size.X <= 0 || size.Y <= 0 || bw <= 0 || bh <= 0 {
		return image.Rectangle{}
	}

	scale := math.Min(float64(bw)/float64(size.X), float64(bh)/float64(size.Y))
	w := min(max(int(math.Round(float64(size.X)*scale)), 1), bw)
	h := min(max(int(math.Round(float64(size.Y)*scale)), 1), bh)

	x := box.Min.X + (bw-w)/2
	y := box.Min.Y
	return image.Rect(x, y, x+w, y+h)
}

// Resize scales src to exactly w×h using Lanczos resampling.
func Resize(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	return imaging.Resize(src, w, h, imaging.Lanczos)
}

// Fill scales src to cover w×h and crops the overflow evenly from both
// sides, using Lanczos resampling.
func Fill(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
}

// Composite draws src over dst with its top-left corner at at. Opacity scales
// the source alpha and is clamped to [0,1].
func Composite(dst *image.RGBA, src image.Image, at image.Point, opacity float64) {
	if opacity <= 0 {
		return
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}

	if opacity >= 1 {
		draw.Draw(dst, r, src, sb.Min, draw.Over)
		return
	}

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})
	draw.DrawMask(dst, r, src, sb.Min, mask, image.Point{}, draw.Over)
}

package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/ironsheep/framecraft-mcp/internal/imaging"
)

type glyph int

const (
	glyphViewfinder glyph = iota
	glyphLaptop
)

// Placeholder proportions, as fractions of canvas height.
const (
	glyphSize    = 0.0215
	glyphSpacing = 0.0072
	labelSize    = 0.0086
)

var placeholderFill = color.NRGBA{R: 255, G: 255, B: 255, A: 38}

// paintPlaceholder fills rect with a translucent rounded panel carrying the
// family glyph and label, centered.
func (e *Engine) paintPlaceholder(canvas *image.RGBA, rect image.Rectangle, radius float64, p profile) error {
	panel, err := imaging.FillRoundedRect(rect.Dx(), rect.Dy(), radius, placeholderFill)
	if err != nil {
		return err
	}
	imaging.Composite(canvas, panel, rect.Min, 1)

	fh := float64(canvas.Bounds().Dy())
	size := max(int(math.Round(fh*glyphSize)), 8)
	spacing := int(math.Round(fh * glyphSpacing))
	spec := FontSpec{Weight: Regular, Size: fh * labelSize}

	label, err := e.text.measure(p.label, spec, rect.Dx())
	if err != nil {
		return err
	}

	top := rect.Min.Y + (rect.Dy()-(size+spacing+label.Height))/2
	icon, err := drawGlyph(p.glyph, size)
	if err != nil {
		return err
	}
	imaging.Composite(canvas, icon, image.Pt(rect.Min.X+(rect.Dx()-size)/2, top), 1)

	origin := image.Pt(rect.Min.X+(rect.Dx()-label.Width)/2, top+size+spacing)
	return e.text.draw(canvas, label, spec, origin, image.White)
}

func drawGlyph(g glyph, size int) (*image.RGBA, error) {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	s := float64(size)
	lw := math.Max(1, s*0.07)
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.SetLineWidth(lw)
	dc.SetLineCap(gg.LineCapRound)

	switch g {
	case glyphLaptop:
		dc.DrawRoundedRectangle(s*0.18, s*0.2, s*0.64, s*0.44, s*0.04)
		dc.DrawLine(s*0.06, s*0.76, s*0.94, s*0.76)
	default:
		m, arm := lw, s*0.28
		far := s - lw
		dc.DrawLine(m, m+arm, m, m)
		dc.DrawLine(m, m, m+arm, m)
		dc.DrawLine(far-arm, m, far, m)
		dc.DrawLine(far, m, far, m+arm)
		dc.DrawLine(m, far-arm, m, far)
		dc.DrawLine(m, far, m+arm, far)
		dc.DrawLine(far-arm, far, far, far)
		dc.DrawLine(far, far-arm, far, far)
		c, plus := s/2, s*0.18
		dc.DrawLine(c-plus, c, c+plus, c)
		dc.DrawLine(c, c-plus, c, c+plus)
	}

	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("failed to draw glyph: %w", err)
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected glyph image type %T", dc.Image())
	}
	return img, nil
}

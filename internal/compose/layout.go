package compose

import (
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
)

// Proportions are fractions of the canvas height unless noted.
const (
	heroSize          = 0.042
	subtitleSize      = 0.022
	textSpacing       = 0.015
	bandGap           = 0.025
	bottomMargin      = 0.03
	textWidth         = 0.88 // of canvas width
	bandWidth         = 0.88 // of canvas width
	subtitleOpacity   = 0.8
	textShadowOpacity = 0.3
	textShadowOffset  = 0.0008
	textShadowBlur    = 0.0015
)

// Drop shadow behind the screenshot, in pixels.
const (
	screenShadowOffset = 10
	screenShadowBlur   = 40
)

var screenShadowColor = color.NRGBA{A: 64}

// profile holds the layout policy that differs between device families.
type profile struct {
	topPadding   float64 // of canvas height
	cornerRadius float64 // of canvas width
	glyph        glyph
	label        string
}

func profileFor(f catalog.Family) profile {
	if f == catalog.FamilyLaptop {
		return profile{
			topPadding:   0.06,
			cornerRadius: 0.02,
			glyph:        glyphLaptop,
			label:        "Select Mac App Screenshot",
		}
	}
	return profile{
		topPadding:   0.08,
		cornerRadius: 0.035,
		glyph:        glyphViewfinder,
		label:        "Select Screenshot",
	}
}

// textLayout is the result of the measure pass.
type textLayout struct {
	hero         TextBlock
	heroSpec     FontSpec
	subtitle     TextBlock
	subtitleSpec FontSpec
	heroRect     image.Rectangle
	subtitleRect image.Rectangle
	bottom       int
}

// layoutText measures hero and subtitle for a w×h canvas and places them.
// Nothing is drawn.
func (e *Engine) layoutText(req Request, w, h int, p profile) (textLayout, error) {
	fh := float64(h)
	maxWidth := int(math.Round(float64(w) * textWidth))

	tl := textLayout{
		heroSpec:     FontSpec{Weight: Bold, Size: fh * heroSize},
		subtitleSpec: FontSpec{Weight: Regular, Size: fh * subtitleSize},
	}

	var err error
	if tl.hero, err = e.text.measure(req.HeroText, tl.heroSpec, maxWidth); err != nil {
		return textLayout{}, err
	}
	if tl.subtitle, err = e.text.measure(req.Subtitle, tl.subtitleSpec, maxWidth); err != nil {
		return textLayout{}, err
	}

	top := int(math.Round(fh * p.topPadding))
	tl.heroRect = centeredRect(w, top, tl.hero)
	tl.bottom = tl.heroRect.Max.Y

	if !tl.subtitle.Empty() {
		top = tl.bottom + int(math.Round(fh*textSpacing))
		tl.subtitleRect = centeredRect(w, top, tl.subtitle)
		tl.bottom = tl.subtitleRect.Max.Y
	}

	return tl, nil
}

func centeredRect(canvasWidth, top int, b TextBlock) image.Rectangle {
	x := (canvasWidth - b.Width) / 2
	return image.Rect(x, top, x+b.Width, top+b.Height)
}

// screenshotBand returns the area below the text left for the screenshot.
// It is empty when the text leaves no room.
func screenshotBand(w, h, textBottom int) image.Rectangle {
	fh := float64(h)
	top := textBottom + int(math.Round(fh*bandGap))
	bottom := h - int(math.Round(fh*bottomMargin))
	bw := int(math.Round(float64(w) * bandWidth))
	x := (w - bw) / 2

	if top >= bottom || bw <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, top, x+bw, bottom)
}

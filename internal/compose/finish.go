package compose

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/imaging"
)

//go:embed assets/laptop_frame.png
var laptopFramePNG []byte

// laptopGeometry describes assets/laptop_frame.png. The hole insets were
// measured on that file; replacing the artwork means measuring them again.
var laptopGeometry = OverlayGeometry{
	Native: image.Pt(1600, 1000),
	Hole:   Insets{Left: 160, Top: 50, Right: 160, Bottom: 150},
}

// finish is the device treatment painted around a displayed screenshot.
type finish interface {
	// screen returns where a screenshot of the given size is displayed
	// inside band. The screenshot is scaled to cover it.
	screen(band image.Rectangle, shot image.Point) image.Rectangle
	// apply paints the treatment around screen, which is already drawn.
	apply(canvas *image.RGBA, screen image.Rectangle, radius float64) error
}

func (e *Engine) finishFor(f catalog.Family) finish {
	if f == catalog.FamilyLaptop {
		return e.laptop
	}
	return bezelFinish{}
}

// bezelFinish strokes a thin light outline on the screenshot's rounded edge.
type bezelFinish struct{}

var bezelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 89}

func (bezelFinish) screen(band image.Rectangle, shot image.Point) image.Rectangle {
	return imaging.FitInside(shot, band)
}

func (bezelFinish) apply(canvas *image.RGBA, screen image.Rectangle, radius float64) error {
	lw := math.Max(2, float64(canvas.Bounds().Dx())*0.004)
	layer, err := imaging.StrokeRoundedRect(screen.Dx(), screen.Dy(), radius, lw, bezelColor)
	if err != nil {
		return err
	}
	imaging.Composite(canvas, layer, screen.Min, 1)
	return nil
}

// Insets are margins in pixels of an overlay's native resolution.
type Insets struct {
	Left, Top, Right, Bottom int
}

// OverlayGeometry describes chassis artwork with a transparent screen hole.
type OverlayGeometry struct {
	Native image.Point
	Hole   Insets
}

// HoleSize is the size of the screen hole at native resolution.
func (g OverlayGeometry) HoleSize() image.Point {
	return image.Pt(g.Native.X-g.Hole.Left-g.Hole.Right, g.Native.Y-g.Hole.Top-g.Hole.Bottom)
}

// Scale is the factor that makes the hole exactly as wide as screen.
func (g OverlayGeometry) Scale(screen image.Rectangle) float64 {
	hw := g.HoleSize().X
	if hw <= 0 {
		return 0
	}
	return float64(screen.Dx()) / float64(hw)
}

// Place returns where the overlay goes so its hole lines up with screen.
// The hole edges are screen's edges; the margins around them scale with
// screen's width.
func (g OverlayGeometry) Place(screen image.Rectangle) image.Rectangle {
	s := g.Scale(screen)
	return image.Rect(
		screen.Min.X-scaled(g.Hole.Left, s),
		screen.Min.Y-scaled(g.Hole.Top, s),
		screen.Max.X+scaled(g.Hole.Right, s),
		screen.Max.Y+scaled(g.Hole.Bottom, s),
	)
}

// HoleIn fits the whole overlay inside box and returns where its hole lands.
func (g OverlayGeometry) HoleIn(box image.Rectangle) image.Rectangle {
	chassis := imaging.FitInside(g.Native, box)
	if chassis.Empty() {
		return image.Rectangle{}
	}
	s := float64(chassis.Dx()) / float64(g.Native.X)
	return image.Rect(
		chassis.Min.X+scaled(g.Hole.Left, s),
		chassis.Min.Y+scaled(g.Hole.Top, s),
		chassis.Max.X-scaled(g.Hole.Right, s),
		chassis.Max.Y-scaled(g.Hole.Bottom, s),
	)
}

func scaled(v int, s float64) int {
	return int(math.Round(float64(v) * s))
}

// overlayFinish composites chassis artwork over the screenshot.
type overlayFinish struct {
	geometry OverlayGeometry
	asset    image.Image
}

func newOverlayFinish(data []byte, g OverlayGeometry) (*overlayFinish, error) {
	asset, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode overlay: %w", err)
	}
	if size := asset.Bounds().Size(); size != g.Native {
		return nil, fmt.Errorf("overlay is %v, geometry expects %v", size, g.Native)
	}
	return &overlayFinish{geometry: g, asset: asset}, nil
}

// screen is the chassis hole whatever the screenshot's shape, so the
// screenshot is cropped to the hole's aspect ratio.
func (o *overlayFinish) screen(band image.Rectangle, _ image.Point) image.Rectangle {
	return o.geometry.HoleIn(band)
}

func (o *overlayFinish) apply(canvas *image.RGBA, screen image.Rectangle, _ float64) error {
	at := o.geometry.Place(screen)
	if at.Empty() {
		return nil
	}
	imaging.Composite(canvas, imaging.Resize(o.asset, at.Dx(), at.Dy()), at.Min, 1)
	return nil
}

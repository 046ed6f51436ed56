package compose

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/imaging"
)

// Engine turns requests into frames. It holds no per-request state; the
// catalog, fonts and overlay artwork are read-only after New.
type Engine struct {
	catalog *catalog.Catalog
	text    *typesetter
	laptop  *overlayFinish
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for render diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine drawing from cat.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("compose: nil catalog")
	}

	text, err := newTypesetter()
	if err != nil {
		return nil, err
	}
	laptop, err := newOverlayFinish(laptopFramePNG, laptopGeometry)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog: cat,
		text:    text,
		laptop:  laptop,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Catalog returns the catalog the engine resolves ids against.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Measure wraps text within maxWidth pixels and reports the space it takes.
// It draws nothing and is deterministic for a given input.
func (e *Engine) Measure(text string, spec FontSpec, maxWidth int) (TextBlock, error) {
	return e.text.measure(text, spec, maxWidth)
}

// Compose renders req. Either a complete frame or an *Error is returned.
func (e *Engine) Compose(req Request) (*Frame, error) {
	start := time.Now()

	tmpl, ok := e.catalog.FindTemplate(req.TemplateID)
	if !ok {
		return nil, newError(KindTemplateNotFound, req.TemplateID, nil)
	}
	device, err := e.resolveDevice(req.DeviceID)
	if err != nil {
		return nil, err
	}

	shot, err := e.loadScreenshot(req)
	if err != nil {
		return nil, err
	}

	w, h := device.Width, device.Height
	p := profileFor(device.Family)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	imaging.VerticalGradient(canvas, tmpl.Top, tmpl.Bottom)

	tl, err := e.layoutText(req, w, h, p)
	if err != nil {
		return nil, newError(KindRenderingFailed, "", err)
	}
	if err := e.paintText(canvas, tl.hero, tl.heroSpec, tl.heroRect.Min, 1); err != nil {
		return nil, newError(KindRenderingFailed, "", err)
	}
	if err := e.paintText(canvas, tl.subtitle, tl.subtitleSpec, tl.subtitleRect.Min, subtitleOpacity); err != nil {
		return nil, newError(KindRenderingFailed, "", err)
	}

	layout := Layout{
		Hero:     tl.heroRect,
		Subtitle: tl.subtitleRect,
		Band:     screenshotBand(w, h, tl.bottom),
	}
	radius := float64(w) * p.cornerRadius

	if !layout.Band.Empty() {
		if shot != nil {
			layout.Screen, err = e.paintScreenshot(canvas, shot, layout.Band, radius, e.finishFor(device.Family))
		} else {
			layout.Screen = layout.Band
			err = e.paintPlaceholder(canvas, layout.Band, radius, p)
		}
		if err != nil {
			return nil, newError(KindRenderingFailed, "", err)
		}
	}

	e.logger.Debug("frame composed",
		"template", tmpl.ID,
		"device", device.ID,
		"family", device.Family.String(),
		"screenshot", shot != nil,
		"duration", time.Since(start))

	return &Frame{Image: canvas, Device: device, Layout: layout}, nil
}

func (e *Engine) resolveDevice(id string) (catalog.Device, error) {
	if id == "" {
		if d, ok := e.catalog.DefaultDevice(); ok {
			return d, nil
		}
		return catalog.Device{}, newError(KindDeviceNotFound, id, nil)
	}
	d, ok := e.catalog.FindDevice(id)
	if !ok {
		return catalog.Device{}, newError(KindDeviceNotFound, id, nil)
	}
	return d, nil
}

func (e *Engine) loadScreenshot(req Request) (image.Image, error) {
	if !req.hasScreenshot() {
		return nil, nil
	}
	if req.Screenshot != nil {
		return req.Screenshot, nil
	}

	img, err := imaging.Load(req.ScreenshotPath)
	switch {
	case errors.Is(err, imaging.ErrNotFound):
		return nil, newError(KindScreenshotNotFound, req.ScreenshotPath, err)
	case err != nil:
		return nil, newError(KindScreenshotLoadFailed, req.ScreenshotPath, err)
	}
	if img.Bounds().Empty() {
		return nil, newError(KindScreenshotLoadFailed, req.ScreenshotPath, errors.New("image has no pixels"))
	}
	return img, nil
}

// paintText draws a block with its soft shadow. Opacity applies to both.
func (e *Engine) paintText(canvas *image.RGBA, block TextBlock, spec FontSpec, at image.Point, opacity float64) error {
	if block.Empty() {
		return nil
	}

	fh := float64(canvas.Bounds().Dy())
	offset := max(1, int(math.Round(fh*textShadowOffset)))
	blur := fh * textShadowBlur
	pad := int(math.Ceil(blur*2)) + 1
	bounds := image.Rect(0, 0, block.Width+2*pad, block.Height+2*pad)
	origin := image.Pt(pad, pad)

	shadow := image.NewRGBA(bounds)
	if err := e.text.draw(shadow, block, spec, origin, image.Black); err != nil {
		return fmt.Errorf("failed to draw text shadow: %w", err)
	}
	imaging.Composite(canvas, imaging.Blur(shadow, blur), at.Add(image.Pt(-pad, offset-pad)), textShadowOpacity*opacity)

	glyphs := image.NewRGBA(bounds)
	if err := e.text.draw(glyphs, block, spec, origin, image.White); err != nil {
		return fmt.Errorf("failed to draw text: %w", err)
	}
	imaging.Composite(canvas, glyphs, at.Sub(origin), opacity)
	return nil
}

// paintScreenshot places shot in the band as the family finish dictates,
// draws it with shadow and rounded corners, then applies the finish. It
// returns the displayed rectangle.
func (e *Engine) paintScreenshot(canvas *image.RGBA, shot image.Image, band image.Rectangle, radius float64, f finish) (image.Rectangle, error) {
	if shot.Bounds().Empty() {
		return image.Rectangle{}, nil
	}
	screen := f.screen(band, shot.Bounds().Size())
	if screen.Empty() {
		return image.Rectangle{}, nil
	}

	shadow, pad, err := imaging.Shadow(screen.Dx(), screen.Dy(), radius, screenShadowBlur, screenShadowColor)
	if err != nil {
		return image.Rectangle{}, err
	}
	imaging.Composite(canvas, shadow, screen.Min.Add(image.Pt(-pad, screenShadowOffset-pad)), 1)

	clipped, err := imaging.ClipRounded(imaging.Fill(shot, screen.Dx(), screen.Dy()), radius)
	if err != nil {
		return image.Rectangle{}, err
	}
	imaging.Composite(canvas, clipped, screen.Min, 1)

	if err := f.apply(canvas, screen, radius); err != nil {
		return image.Rectangle{}, err
	}
	return screen, nil
}

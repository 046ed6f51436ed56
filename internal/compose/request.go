package compose

import (
	"image"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
)

// Request describes one frame to compose.
type Request struct {
	// ScreenshotPath is read from disk when Screenshot is nil. Both empty
	// renders the placeholder.
	ScreenshotPath string
	// Screenshot is an already decoded image. It takes precedence over
	// ScreenshotPath.
	Screenshot image.Image

	HeroText string
	Subtitle string

	TemplateID string
	// DeviceID selects the output canvas. Empty selects the catalog default.
	DeviceID string
}

func (r Request) hasScreenshot() bool {
	return r.Screenshot != nil || r.ScreenshotPath != ""
}

// Layout records where each element of a frame was placed, in canvas pixels.
// Empty rectangles mean the element was not drawn.
type Layout struct {
	Hero     image.Rectangle
	Subtitle image.Rectangle
	// Band is the area left for the screenshot below the text.
	Band image.Rectangle
	// Screen is the displayed screenshot, or the placeholder when there is none.
	Screen image.Rectangle
}

// Frame is a finished composition.
type Frame struct {
	Image  *image.RGBA
	Device catalog.Device
	Layout Layout
}

// BatchEntry is one frame of a batch. All frames share the batch device.
type BatchEntry struct {
	ScreenshotPath string
	HeroText       string
	Subtitle       string
	TemplateID     string
	OutputPath     string
}

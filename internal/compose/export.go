package compose

import (
	"errors"

	"github.com/ironsheep/framecraft-mcp/internal/imaging"
)

// Export writes frame to path as a PNG, creating parent directories. Any
// failure is reported as a KindSaveFailed *Error.
func (e *Engine) Export(frame *Frame, path string) error {
	if frame == nil || frame.Image == nil {
		return newError(KindSaveFailed, path, errors.New("no image to save"))
	}
	if path == "" {
		return newError(KindSaveFailed, path, errors.New("empty output path"))
	}
	if err := imaging.SavePNG(frame.Image, path); err != nil {
		return newError(KindSaveFailed, path, err)
	}
	e.logger.Debug("frame exported", "path", path, "width", frame.Device.Width, "height", frame.Device.Height)
	return nil
}

// Generate composes req and exports it to output, returning the path written.
func (e *Engine) Generate(req Request, output string) (string, error) {
	frame, err := e.Compose(req)
	if err != nil {
		return "", err
	}
	if err := e.Export(frame, output); err != nil {
		return "", err
	}
	return output, nil
}

// GenerateBatch generates entries in order on one device. It stops at the
// first failure and returns the paths written before it along with the error.
func (e *Engine) GenerateBatch(entries []BatchEntry, deviceID string) ([]string, error) {
	paths := make([]string, 0, len(entries))
	for i, entry := range entries {
		path, err := e.Generate(Request{
			ScreenshotPath: entry.ScreenshotPath,
			HeroText:       entry.HeroText,
			Subtitle:       entry.Subtitle,
			TemplateID:     entry.TemplateID,
			DeviceID:       deviceID,
		}, entry.OutputPath)
		if err != nil {
			e.logger.Debug("batch stopped", "entry", i, "written", len(paths), "error", err)
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

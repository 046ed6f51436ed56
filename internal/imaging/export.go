package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes img to path as a lossless 8-bit RGBA PNG. The alpha
// channel is written even when every pixel is opaque.
//
// The image is encoded in memory first; nothing touches the filesystem if
// encoding fails. Missing parent directories are created. The bytes are
// written to a temporary file next to path and renamed into place, so a
// failed write never leaves a truncated file at path.
func SavePNG(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, withAlpha(img)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close png: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move png into place: %w", err)
	}

	return nil
}

// translucent hides an image's opacity from the encoder, which otherwise
// drops the alpha channel of fully opaque images.
type translucent struct {
	image.Image
}

func (translucent) Opaque() bool { return false }

// withAlpha makes img encode as 8-bit RGBA.
func withAlpha(img image.Image) image.Image {
	switch img.ColorModel() {
	case color.RGBAModel, color.NRGBAModel:
	default:
		b := img.Bounds()
		dst := image.NewNRGBA(b)
		draw.Draw(dst, b, img, b.Min, draw.Src)
		img = dst
	}
	return translucent{img}
}

package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-color PNG into a temp directory and returns
// its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := createTestImage(t, 100, 50, color.RGBA{255, 0, 0, 255})

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", b.Dx(), b.Dy())
	}

	r, g, bl, a := img.At(10, 10).RGBA()
	if r>>8 != 255 || g != 0 || bl != 0 || a>>8 != 255 {
		t.Errorf("pixel: got (%d,%d,%d,%d), want opaque red", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestLoadUndecodable(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"garbage content", garbage},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error: got %v, want ErrDecode", err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Errorf("error %v should not match ErrNotFound", err)
			}
		})
	}
}

func TestLoadSeesReplacedFile(t *testing.T) {
	path := createTestImage(t, 10, 10, color.RGBA{255, 0, 0, 255})
	if _, err := Load(path); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 20, 30))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to recreate file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %v, want 20x30", got.Bounds().Size())
	}
}

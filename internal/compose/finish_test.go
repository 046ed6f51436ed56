package compose

import (
	"image"
	"testing"
)

func TestOverlayGeometry(t *testing.T) {
	g := OverlayGeometry{
		Native: image.Pt(1600, 1000),
		Hole:   Insets{Left: 160, Top: 50, Right: 160, Bottom: 150},
	}

	if got, want := g.HoleSize(), image.Pt(1280, 800); got != want {
		t.Errorf("HoleSize: got %v, want %v", got, want)
	}

	tests := []struct {
		name      string
		screen    image.Rectangle
		wantScale float64
		wantPlace image.Rectangle
	}{
		{
			name:      "half size",
			screen:    image.Rect(100, 50, 740, 450),
			wantScale: 0.5,
			wantPlace: image.Rect(20, 25, 820, 525),
		},
		{
			name:      "native size",
			screen:    image.Rect(160, 50, 1440, 850),
			wantScale: 1,
			wantPlace: image.Rect(0, 0, 1600, 1000),
		},
		{
			name:      "double size",
			screen:    image.Rect(0, 0, 2560, 1600),
			wantScale: 2,
			wantPlace: image.Rect(-320, -100, 2880, 1900),
		},
		{
			name:      "shorter than the hole aspect",
			screen:    image.Rect(0, 0, 640, 100),
			wantScale: 0.5,
			wantPlace: image.Rect(-80, -25, 720, 175),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Scale(tt.screen); got != tt.wantScale {
				t.Errorf("Scale: got %v, want %v", got, tt.wantScale)
			}
			if got := g.Place(tt.screen); got != tt.wantPlace {
				t.Errorf("Place: got %v, want %v", got, tt.wantPlace)
			}
		})
	}
}

func TestOverlayGeometryHoleIn(t *testing.T) {
	g := OverlayGeometry{
		Native: image.Pt(1600, 1000),
		Hole:   Insets{Left: 160, Top: 50, Right: 160, Bottom: 150},
	}

	tests := []struct {
		name string
		box  image.Rectangle
		want image.Rectangle
	}{
		{"exact aspect", image.Rect(0, 0, 800, 500), image.Rect(80, 25, 720, 425)},
		{"tall box anchors top", image.Rect(0, 0, 800, 900), image.Rect(80, 25, 720, 425)},
		{"wide box centers", image.Rect(0, 0, 1200, 500), image.Rect(280, 25, 920, 425)},
		{"empty box", image.Rect(0, 0, 0, 100), image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.HoleIn(tt.box)
			if got != tt.want {
				t.Errorf("HoleIn(%v): got %v, want %v", tt.box, got, tt.want)
			}
			if !got.Empty() && g.Place(got) != fittedChassis(g, tt.box) {
				t.Errorf("Place(HoleIn) = %v does not round-trip to the fitted chassis %v", g.Place(got), fittedChassis(g, tt.box))
			}
		})
	}
}

func fittedChassis(g OverlayGeometry, box image.Rectangle) image.Rectangle {
	s := float64(box.Dx()) / float64(g.Native.X)
	if hs := float64(box.Dy()) / float64(g.Native.Y); hs < s {
		s = hs
	}
	w, h := scaled(g.Native.X, s), scaled(g.Native.Y, s)
	x := box.Min.X + (box.Dx()-w)/2
	return image.Rect(x, box.Min.Y, x+w, box.Min.Y+h)
}

func TestEmbeddedOverlayMatchesGeometry(t *testing.T) {
	o, err := newOverlayFinish(laptopFramePNG, laptopGeometry)
	if err != nil {
		t.Fatalf("newOverlayFinish failed: %v", err)
	}

	hole := image.Rect(
		laptopGeometry.Hole.Left,
		laptopGeometry.Hole.Top,
		laptopGeometry.Native.X-laptopGeometry.Hole.Right,
		laptopGeometry.Native.Y-laptopGeometry.Hole.Bottom,
	)
	corners := []image.Point{hole.Min, {hole.Max.X - 1, hole.Max.Y - 1}, {(hole.Min.X + hole.Max.X) / 2, (hole.Min.Y + hole.Max.Y) / 2}}
	for _, p := range corners {
		if _, _, _, a := o.asset.At(p.X, p.Y).RGBA(); a != 0 {
			t.Errorf("hole pixel %v: alpha %d, want transparent", p, a>>8)
		}
	}
	bezel := []image.Point{{hole.Min.X - 1, hole.Min.Y - 1}, {hole.Max.X, hole.Max.Y}}
	for _, p := range bezel {
		if _, _, _, a := o.asset.At(p.X, p.Y).RGBA(); a == 0 {
			t.Errorf("bezel pixel %v: transparent, want opaque chassis", p)
		}
	}
}

func TestOverlayRejectsMismatchedGeometry(t *testing.T) {
	g := laptopGeometry
	g.Native = image.Pt(800, 500)
	if _, err := newOverlayFinish(laptopFramePNG, g); err == nil {
		t.Error("expected error for geometry that does not match the artwork")
	}
}

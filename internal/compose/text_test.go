package compose

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMeasure(t *testing.T) {
	e := newTestEngine(t)
	spec := FontSpec{Weight: Bold, Size: 20}

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		wantLines int // 0 means "more than one"
	}{
		{"single line", "Hello", 500, 1},
		{"wraps words", "one two three four five six seven eight", 80, 0},
		{"explicit newline", "first\nsecond", 500, 2},
		{"blank line kept", "first\n\nthird", 500, 3},
		{"breaks long word", strings.Repeat("x", 40), 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := e.Measure(tt.text, spec, tt.maxWidth)
			if err != nil {
				t.Fatalf("Measure failed: %v", err)
			}

			switch {
			case tt.wantLines == 0 && len(block.Lines) < 2:
				t.Errorf("lines: got %q, want a wrapped block", block.Lines)
			case tt.wantLines > 0 && len(block.Lines) != tt.wantLines:
				t.Errorf("lines: got %d (%q), want %d", len(block.Lines), block.Lines, tt.wantLines)
			}

			if block.Width > tt.maxWidth {
				t.Errorf("width: got %d, exceeds max %d", block.Width, tt.maxWidth)
			}
			for i, w := range block.LineWidths {
				if w > tt.maxWidth {
					t.Errorf("line %d %q: width %d exceeds max %d", i, block.Lines[i], w, tt.maxWidth)
				}
			}
			if block.Height != len(block.Lines)*block.LineHeight {
				t.Errorf("height: got %d, want %d lines x %d", block.Height, len(block.Lines), block.LineHeight)
			}
			if got := strings.Join(strings.Fields(strings.Join(block.Lines, " ")), ""); got != strings.Join(strings.Fields(tt.text), "") {
				t.Errorf("wrapping lost characters: got %q", block.Lines)
			}
		})
	}
}

func TestMeasureEmpty(t *testing.T) {
	e := newTestEngine(t)
	block, err := e.Measure("", FontSpec{Weight: Regular, Size: 12}, 100)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if !block.Empty() || block.Width != 0 || block.Height != 0 {
		t.Errorf("got %+v, want empty block", block)
	}
}

func TestMeasureIsPure(t *testing.T) {
	e := newTestEngine(t)
	spec := FontSpec{Weight: Regular, Size: 16}
	text := "Measure twice and cut once, the carpenter said"

	first, err := e.Measure(text, spec, 120)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	second, err := e.Measure(text, spec, 120)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("measure not deterministic (-first +second):\n%s", diff)
	}
}

func TestMeasureBoldIsWider(t *testing.T) {
	e := newTestEngine(t)
	regular, err := e.Measure("Wide Words", FontSpec{Weight: Regular, Size: 30}, 1000)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	bold, err := e.Measure("Wide Words", FontSpec{Weight: Bold, Size: 30}, 1000)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if bold.Width <= regular.Width {
		t.Errorf("bold width %d should exceed regular width %d", bold.Width, regular.Width)
	}
}

package compose

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// minFontSize keeps faces usable on very small canvases.
const minFontSize = 1

// Weight selects a typeface.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// FontSpec is a typeface weight at a size in pixels.
type FontSpec struct {
	Weight Weight
	Size   float64
}

// TextBlock is text wrapped to a width and measured, ready to paint.
type TextBlock struct {
	Lines      []string
	LineWidths []int
	Width      int
	Height     int
	LineHeight int
	Ascent     int
}

// Empty reports whether the block occupies no space.
func (b TextBlock) Empty() bool { return len(b.Lines) == 0 }

type typesetter struct {
	bold    *opentype.Font
	regular *opentype.Font
}

func newTypesetter() (*typesetter, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	return &typesetter{bold: bold, regular: regular}, nil
}

func (ts *typesetter) face(spec FontSpec) (font.Face, error) {
	f := ts.regular
	if spec.Weight == Bold {
		f = ts.bold
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    math.Max(spec.Size, minFontSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// measure wraps text within maxWidth pixels and returns the resulting block.
// It has no side effects. Newlines start new lines; words wider than
// maxWidth are broken between runes.
func (ts *typesetter) measure(text string, spec FontSpec, maxWidth int) (TextBlock, error) {
	if text == "" {
		return TextBlock{}, nil
	}

	face, err := ts.face(spec)
	if err != nil {
		return TextBlock{}, err
	}
	defer face.Close()

	m := face.Metrics()
	block := TextBlock{
		Lines:      wrap(face, text, fixed.I(max(maxWidth, 1))),
		LineHeight: m.Height.Ceil(),
		Ascent:     m.Ascent.Ceil(),
	}
	block.LineWidths = make([]int, len(block.Lines))
	for i, line := range block.Lines {
		w := font.MeasureString(face, line).Ceil()
		block.LineWidths[i] = w
		block.Width = max(block.Width, w)
	}
	block.Height = len(block.Lines) * block.LineHeight

	return block, nil
}

// draw paints block with its top-left corner at origin, each line centered
// within the block width.
func (ts *typesetter) draw(dst draw.Image, block TextBlock, spec FontSpec, origin image.Point, src image.Image) error {
	if block.Empty() {
		return nil
	}

	face, err := ts.face(spec)
	if err != nil {
		return err
	}
	defer face.Close()

	d := font.Drawer{Dst: dst, Src: src, Face: face}
	for i, line := range block.Lines {
		x := origin.X + (block.Width-block.LineWidths[i])/2
		y := origin.Y + i*block.LineHeight + block.Ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
	return nil
}

func wrap(face font.Face, text string, maxWidth fixed.Int26_6) []string {
	var lines []string
	text = strings.ReplaceAll(text, "\r\n", "\n")

	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if font.MeasureString(face, candidate) <= maxWidth {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			for font.MeasureString(face, word) > maxWidth {
				head, rest := splitToWidth(face, word, maxWidth)
				if rest == "" {
					break
				}
				lines = append(lines, head)
				word = rest
			}
			line = word
		}
		lines = append(lines, line)
	}

	return lines
}

// splitToWidth returns the longest prefix of word that fits maxWidth, never
// shorter than one rune, and the remainder.
func splitToWidth(face font.Face, word string, maxWidth fixed.Int26_6) (string, string) {
	end := 0
	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		next := end + size
		if end > 0 && font.MeasureString(face, word[:next]) > maxWidth {
			break
		}
		end = next
	}
	return word[:end], word[end:]
}

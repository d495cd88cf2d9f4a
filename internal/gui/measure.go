package gui

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer reports the size text occupies when drawn.
type Measurer interface {
	Measure(text string) image.Point
}

// FontMeasurer measures with a font.Face, one line per '\n'.
type FontMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the face the backend draws with.
func DefaultMeasurer() FontMeasurer {
	return FontMeasurer{Face: basicfont.Face7x13}
}

// LineHeight is the advance between two lines of text.
func (m FontMeasurer) LineHeight() int {
	return m.Face.Metrics().Height.Ceil()
}

func (m FontMeasurer) Measure(text string) image.Point {
	lines := strings.Split(text, "\n")
	w := 0
	for _, ln := range lines {
		if lw := font.MeasureString(m.Face, ln).Ceil(); lw > w {
			w = lw
		}
	}
	return image.Pt(w, len(lines)*m.LineHeight())
}

// PaddedSize is the size of text plus padding on each side.
func PaddedSize(m Measurer, text string, padX, padY int) image.Point {
	return m.Measure(text).Add(image.Pt(padX*2, padY*2))
}

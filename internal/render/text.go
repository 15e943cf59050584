package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Last-resort metrics for faces that report neither ink bounds nor advances.
const (
	estimateCharWidth = 6
	estimateHeight    = 20
)

// Measure returns the pixel size of text drawn with face.
//
// The ink bounding box is preferred. Faces that report no bounds for the
// glyphs fall back to the advance width and the face's line height, and faces
// that report nothing at all get a per-character estimate.
func Measure(face font.Face, text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	if bounds, _ := font.BoundString(face, text); !bounds.Empty() {
		return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
	}
	if advance := font.MeasureString(face, text); advance > 0 {
		m := face.Metrics()
		h := m.Height.Ceil()
		if h <= 0 {
			h = (m.Ascent + m.Descent).Ceil()
		}
		if h > 0 {
			return advance.Ceil(), h
		}
	}
	return utf8.RuneCountInString(text) * estimateCharWidth, estimateHeight
}

// Wrap breaks text into lines no wider than maxWidth, packing words greedily.
// A word that is wider than maxWidth on its own gets a line to itself.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if w, _ := Measure(face, candidate); w <= maxWidth {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// FitText picks the largest size in TitleMaxSize, TitleMaxSize-TitleStep, ...,
// TitleMinSize at which text fits maxWidth, or TitleMinSize if none does.
// Faces tried and rejected are closed.
func FitText(fonts *FontSet, style Style, text string, maxWidth int) (font.Face, int) {
	size := TitleMaxSize
	for {
		face := fonts.Face(style, float64(size))
		w, _ := Measure(face, text)
		if w <= maxWidth || size-TitleStep < TitleMinSize {
			return face, size
		}
		face.Close()
		size -= TitleStep
	}
}

// DrawText draws text with its top-left corner at (x, y); y is the top of the
// face's ascent.
func DrawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	if text == "" {
		return
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// DrawTextCentered centers the ink of text inside rect.
func DrawTextCentered(dst draw.Image, face font.Face, text string, rect image.Rectangle, c color.Color) {
	bounds, _ := font.BoundString(face, text)
	w, h := Measure(face, text)
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x-bounds.Min.X.Floor(), y-bounds.Min.Y.Floor()),
	}
	drawer.DrawString(text)
}

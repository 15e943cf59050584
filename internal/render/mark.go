package render

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// FallbackBadgeText is drawn when no mark image is available.
const FallbackBadgeText = "GH"

// FitMark shrinks img to fit a BadgeSize box, keeping its aspect ratio.
// Images already small enough are left at their size.
func FitMark(img image.Image) *image.NRGBA {
	return imaging.Fit(img, BadgeSize, BadgeSize, imaging.Lanczos)
}

// DrawMark alpha-composites mark with its top-left corner at rect.Min.
func DrawMark(dst draw.Image, mark image.Image, rect image.Rectangle) {
	b := mark.Bounds()
	draw.Draw(dst, image.Rectangle{Min: rect.Min, Max: rect.Min.Add(b.Size())}, mark, b.Min, draw.Over)
}

// DrawFallbackBadge paints a rounded dark square filling rect with the
// FallbackBadgeText centered inside it.
func DrawFallbackBadge(dst *image.RGBA, face font.Face, rect image.Rectangle) {
	dc := gg.NewContextForRGBA(dst)
	dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), float64(rect.Dx()/6))
	dc.SetColor(BadgeFill)
	dc.Fill()

	DrawTextCentered(dst, face, FallbackBadgeText, rect, BadgeText)
}

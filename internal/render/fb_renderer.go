package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// pixelSink is the subset of a framebuffer device the blit needs.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Preview shows canvas on the Linux framebuffer at device, e.g. /dev/fb0,
// scaled to the framebuffer's resolution.
func Preview(device string, canvas *image.RGBA) error {
	dev, err := fb.Open(device)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFramebuffer, err, "open %s", device)
	}
	defer dev.Close()

	blit(dev, canvas)
	return nil
}

// blit copies canvas onto dst via nearest-neighbor sampling, forcing opaque
// output.
func blit(dst pixelSink, canvas *image.RGBA) {
	bounds := dst.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	src := canvas.Bounds()
	for y := 0; y < dstHeight; y++ {
		sy := src.Min.Y + (y*src.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Min.X + (x*src.Dx())/dstWidth
			pixel := canvas.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}

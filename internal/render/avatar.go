package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/rook-computer/cardmaker/internal/errors"
	"github.com/rook-computer/cardmaker/internal/render/layout"
)

// LoadImage opens and decodes an image file in any format imaging supports.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "load %s", path)
	}
	return img, nil
}

// CropCircle crops src to its largest centered square and masks everything
// outside the inscribed circle to transparent. The mask has a hard edge, so
// every pixel is either kept as is or fully transparent.
func CropCircle(src image.Image) *image.NRGBA {
	b := src.Bounds()
	size := min(b.Dx(), b.Dy())
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size == 0 {
		return out
	}
	square := imaging.CropCenter(src, size, size)
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, circleMask(size), image.Point{}, draw.Src)
	return out
}

// circleMask returns a size x size mask that is opaque where a pixel's centre
// lies at least half a pixel inside the inscribed circle. Corner pixels are
// always outside and the centre pixel is always inside.
func circleMask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c - 0.5
	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - c
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			if dx*dx+dy*dy <= r*r {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	mask.SetAlpha(size/2, size/2, color.Alpha{A: 0xff})
	return mask
}

// Avatar turns src into the round, bordered avatar placed on the card:
// AvatarDiameter across plus an AvatarBorder ring on every side.
func Avatar(src image.Image) image.Image {
	round := imaging.Resize(CropCircle(src), AvatarDiameter, AvatarDiameter, imaging.Lanczos)

	outer := AvatarDiameter + 2*AvatarBorder
	dc := gg.NewContext(outer, outer)
	r := float64(outer) / 2
	dc.DrawCircle(r, r, r)
	dc.SetColor(Border)
	dc.Fill()

	inner := layout.Inset(image.Rect(0, 0, outer, outer), AvatarBorder)
	dc.DrawImage(round, inner.Min.X, inner.Min.Y)
	return dc.Image()
}

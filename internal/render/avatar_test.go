package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestCropCircle(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 40, 20},
		{"portrait", 30, 64},
		{"square", 50, 50},
		{"odd", 41, 17},
		{"single pixel", 1, 1},
		{"two by three", 2, 3},
		{"three", 3, 3},
		{"six by nine", 6, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CropCircle(solid(tt.w, tt.h, red))
			size := min(tt.w, tt.h)
			require.Equal(t, image.Rect(0, 0, size, size), out.Bounds())

			mid := image.Pt(size/2, size/2)
			last := size - 1
			for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
				if p == mid {
					// 1x1 and 2x2 squares have no corner apart from the centre.
					continue
				}
				assert.Zero(t, out.NRGBAAt(p.X, p.Y).A, "corner %v should be transparent", p)
			}
			center := out.NRGBAAt(mid.X, mid.Y)
			assert.Equal(t, uint8(255), center.A)
			assert.Equal(t, uint8(255), center.R)

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if a := out.NRGBAAt(x, y).A; a != 0 && a != 255 {
						t.Fatalf("pixel (%d,%d) alpha = %d, want 0 or 255", x, y, a)
					}
				}
			}
		})
	}
}

func TestCropCircleCentersTheSquare(t *testing.T) {
	// Left half green, right half blue: a centered crop of 40x20 is
	// x in [10,30), so the circle's left and right edges differ.
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(src, image.Rect(0, 0, 20, 20), &image.Uniform{C: color.NRGBA{G: 255, A: 255}}, image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(20, 0, 40, 20), &image.Uniform{C: color.NRGBA{B: 255, A: 255}}, image.Point{}, draw.Src)

	out := CropCircle(src)
	assert.Equal(t, uint8(255), out.NRGBAAt(4, 10).G)
	assert.Equal(t, uint8(255), out.NRGBAAt(15, 10).B)
}

func TestCropCircleEmpty(t *testing.T) {
	out := CropCircle(image.NewNRGBA(image.Rect(0, 0, 0, 10)))
	assert.True(t, out.Bounds().Empty())
}

func TestAvatar(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	out := Avatar(solid(300, 200, blue))

	outer := AvatarDiameter + 2*AvatarBorder
	require.Equal(t, image.Rect(0, 0, outer, outer), out.Bounds())

	_, _, _, a := out.At(0, 0).RGBA()
	assert.Zero(t, a, "corner outside the border ring is transparent")

	r, g, b, a := out.At(outer/2, 2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a}, "border ring is white")

	r, g, b, a = out.At(outer/2, outer/2).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff, 0xffff}, []uint32{r, g, b, a}, "center keeps the source color")
}

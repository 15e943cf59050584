package render

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// JPEGQuality is used when the output path has a .jpg or .jpeg extension.
const JPEGQuality = 95

// Save encodes img in the format implied by path's extension and writes it,
// replacing any existing file.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "save %s", path)
	}
	return nil
}

package render

import (
	"image"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// QRCode renders payload as a square code sizePx wide, or QRCodeSize wide
// when sizePx is not positive. Medium error correction keeps a repository
// URL readable at the size the card uses. Cards without a payload get no
// code and a nil image.
func QRCode(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = QRCodeSize
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQRCode, err, "encode %d-byte payload", len(payload))
	}
	return code.Image(sizePx), nil
}

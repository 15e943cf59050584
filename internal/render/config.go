package render

import "image/color"

// Card palette.
var (
	Background  = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	TextColor   = color.RGBA{R: 28, G: 32, B: 36, A: 0xFF}
	SubtleColor = color.RGBA{R: 98, G: 108, B: 118, A: 0xFF}
	StatsColor  = color.RGBA{R: 100, G: 110, B: 124, A: 0xFF}

	BarRed    = color.RGBA{R: 232, G: 76, B: 61, A: 0xFF}
	BarBlue   = color.RGBA{R: 44, G: 111, B: 180, A: 0xFF}
	BadgeFill = color.RGBA{R: 36, G: 41, B: 46, A: 0xFF}
	BadgeText = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
	Border    = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}
)

// Canvas geometry. Everything is laid out in absolute pixels on a fixed
// 1280x640 canvas.
const (
	CanvasWidth  = 1280
	CanvasHeight = 640

	TextLeft   = 100
	RightPanel = 260 // width of the avatar/badge column
	TextRight  = CanvasWidth - RightPanel
	TextTop    = 120

	OwnerSize    = 28
	TitleMaxSize = 64
	TitleMinSize = 28
	TitleStep    = 2
	BodySize     = 26
	StatsSize    = 22
	MaxBodyLines = 3

	AvatarDiameter = 180
	AvatarBorder   = 6
	AvatarTop      = 100

	QRCodeSize = 128
	QRCodeGap  = 24

	BarHeight  = 18
	BarSplit   = 0.6 // fraction of width painted red
	BadgeSize  = 48
	BadgeInset = 48 // distance from the right edge
	BadgeLift  = 12 // gap above the bar

	StatsSpacing = 64
	MetaInset    = 64 // meta baseline distance from the bottom
)

// Package render draws social preview cards.
//
// A card is a fixed 1280x640 canvas: owner and repository name, a wrapped
// description, a stats line and a meta line on the left; a round avatar,
// optional QR code and a badge on the right; a two-colour accent bar along
// the bottom. Missing or broken assets and fonts degrade to fallbacks so that
// Render always produces an image. Only Save can fail.
package render

import (
	"errors"
	"image"
	"image/draw"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rook-computer/cardmaker/internal/render/layout"
)

// DefaultTitle replaces an empty title.
const DefaultTitle = "unknown/repo"

// ShortSHALength is how much of the commit hash the meta line shows.
const ShortSHALength = 7

// Card is the input for one render.
type Card struct {
	Title    string // "owner/repo"
	Subtitle string
	Author   string
	SHA      string
	LogoPath string // avatar source; empty or missing skips the avatar
	MarkPath string // badge source; empty or missing draws the fallback badge
	QRCode   string // QR payload; empty draws no QR code
}

// OwnerRepo splits the title on its first "/". A title without a slash is
// all repository name.
func (c Card) OwnerRepo() (owner, repo string) {
	raw := c.Title
	if raw == "" {
		raw = DefaultTitle
	}
	if owner, repo, ok := strings.Cut(raw, "/"); ok {
		return owner, repo
	}
	return "", raw
}

// Meta returns the bottom-left line, "by <author> • <sha>", with either part
// omitted when unset.
func (c Card) Meta() string {
	meta := ""
	if c.Author != "" {
		meta = "by " + c.Author
	}
	if c.SHA != "" {
		sha := c.SHA
		if len(sha) > ShortSHALength {
			sha = sha[:ShortSHALength]
		}
		meta += " • " + sha
	}
	return meta
}

// Stat is one entry of the stats line.
type Stat struct {
	Label string
	Value string
}

// Stats are placeholders; they are not read from any repository.
var Stats = []Stat{
	{Label: "Contributors", Value: "1"},
	{Label: "Issues", Value: "0"},
	{Label: "Stars", Value: "0"},
	{Label: "Forks", Value: "0"},
}

// Renderer draws cards onto fresh canvases.
type Renderer struct {
	Fonts  *FontSet
	Logger *log.Logger
}

// NewRenderer returns a Renderer using fonts. A nil logger uses log.Default.
func NewRenderer(fonts *FontSet, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Fonts: fonts, Logger: logger}
}

// Render draws card. Later steps paint over earlier ones.
func (r *Renderer) Render(card Card) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	y := r.drawHeading(canvas, card)
	y = r.drawSubtitle(canvas, card.Subtitle, y)
	r.drawStats(canvas, y+18)
	r.drawMeta(canvas, card.Meta())

	r.drawAvatar(canvas, card.LogoPath)
	r.drawQRCode(canvas, card.QRCode)
	r.drawBar(canvas)
	r.drawMark(canvas, card.MarkPath)
	return canvas
}

// drawHeading draws the owner line and the shrink-to-fit repository name and
// returns the cursor below them.
func (r *Renderer) drawHeading(canvas *image.RGBA, card Card) int {
	owner, repo := card.OwnerRepo()
	y := TextTop

	if owner != "" {
		face := r.Fonts.Face(Regular, OwnerSize)
		label := owner + "/"
		DrawText(canvas, face, label, TextLeft, y, SubtleColor)
		_, h := Measure(face, label)
		y += h + 10
		face.Close()
	}

	face, size := FitText(r.Fonts, Bold, repo, TextRight-TextLeft)
	defer face.Close()
	r.Logger.Debugf("Title %q at %dpt", repo, size)
	DrawText(canvas, face, repo, TextLeft, y, TextColor)
	_, h := Measure(face, repo)
	return y + h + 18
}

func (r *Renderer) drawSubtitle(canvas *image.RGBA, subtitle string, y int) int {
	face := r.Fonts.Face(Regular, BodySize)
	defer face.Close()

	lines := Wrap(face, subtitle, TextRight-TextLeft)
	if len(lines) > MaxBodyLines {
		r.Logger.Debugf("Subtitle truncated from %d to %d lines", len(lines), MaxBodyLines)
		lines = lines[:MaxBodyLines]
	}
	for _, line := range lines {
		DrawText(canvas, face, line, TextLeft, y, SubtleColor)
		_, h := Measure(face, line)
		y += h + 6
	}
	return y
}

func (r *Renderer) drawStats(canvas *image.RGBA, y int) {
	face := r.Fonts.Face(Regular, StatsSize)
	defer face.Close()

	x := TextLeft
	for _, s := range Stats {
		text := s.Value + " " + s.Label
		DrawText(canvas, face, text, x, y, StatsColor)
		w, _ := Measure(face, text)
		x += w + StatsSpacing
	}
}

func (r *Renderer) drawMeta(canvas *image.RGBA, meta string) {
	if meta == "" {
		return
	}
	face := r.Fonts.Face(Regular, StatsSize)
	defer face.Close()
	DrawText(canvas, face, meta, TextLeft, CanvasHeight-MetaInset, SubtleColor)
}

// rightColumn is the panel right of the text column, starting at top.
func rightColumn(top int) image.Rectangle {
	return image.Rect(TextRight, top, CanvasWidth, CanvasHeight)
}

func avatarRect() image.Rectangle {
	outer := AvatarDiameter + 2*AvatarBorder
	return layout.AnchorTopCenter(rightColumn(AvatarTop), outer, outer)
}

// BadgeRect is where the mark or the fallback badge goes.
func BadgeRect() image.Rectangle {
	canvas := image.Rect(0, 0, CanvasWidth, CanvasHeight)
	return layout.AnchorBottomRight(canvas, BadgeSize, BadgeSize, BadgeInset, BarHeight+BadgeLift)
}

func (r *Renderer) drawAvatar(canvas *image.RGBA, path string) {
	if path == "" {
		return
	}
	src, err := LoadImage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.Logger.Debugf("No avatar at %s", path)
		} else {
			r.Logger.Warnf("Avatar skipped: %v", err)
		}
		return
	}
	avatar := Avatar(src)
	rect := avatarRect()
	draw.Draw(canvas, rect, avatar, avatar.Bounds().Min, draw.Over)
}

func (r *Renderer) drawQRCode(canvas *image.RGBA, payload string) {
	if payload == "" {
		return
	}
	img, err := QRCode(payload, QRCodeSize)
	if err != nil {
		r.Logger.Warnf("QR code skipped: %v", err)
		return
	}
	rect := layout.AnchorTopCenter(rightColumn(avatarRect().Max.Y+QRCodeGap), QRCodeSize, QRCodeSize)
	draw.Draw(canvas, rect, img, img.Bounds().Min, draw.Over)
}

func (r *Renderer) drawBar(canvas *image.RGBA) {
	_, bar := layout.SplitHorizontal(canvas.Bounds(), CanvasHeight-BarHeight)
	red, blue := layout.SplitVertical(bar, int(CanvasWidth*BarSplit))
	draw.Draw(canvas, red, &image.Uniform{C: BarRed}, image.Point{}, draw.Src)
	draw.Draw(canvas, blue, &image.Uniform{C: BarBlue}, image.Point{}, draw.Src)
}

func (r *Renderer) drawMark(canvas *image.RGBA, path string) {
	rect := BadgeRect()
	if path != "" {
		mark, err := LoadImage(path)
		if err == nil {
			DrawMark(canvas, FitMark(mark), rect)
			return
		}
		r.Logger.Debugf("Drawing fallback badge: %v", err)
	}
	face := r.Fonts.Face(Bold, BadgeSize/2)
	defer face.Close()
	DrawFallbackBadge(canvas, face, rect)
}

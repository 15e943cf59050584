package render

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rook-computer/cardmaker/internal/errors"
)

// Default font files. Any of them may be missing on the host.
const (
	DefaultRegularFont = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DefaultBoldFont    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

// Style selects a font weight.
type Style int

const (
	Regular Style = iota
	Bold
)

func (s Style) String() string {
	if s == Bold {
		return "bold"
	}
	return "regular"
}

// parsedFont holds whichever parser accepted the file.
type parsedFont struct {
	otf *opentype.Font
	ttf *truetype.Font
}

// FontSet resolves (style, size) pairs to faces. A file that cannot be read or
// parsed falls back to the embedded Go fonts, and basicfont is used if even
// that fails. Parsed files are cached for the lifetime of the set.
type FontSet struct {
	RegularPath string
	BoldPath    string
	Logger      *log.Logger

	parsed map[string]*parsedFont
	failed map[string]error
}

// NewFontSet returns a FontSet reading the given files.
func NewFontSet(regularPath, boldPath string, logger *log.Logger) *FontSet {
	if logger == nil {
		logger = log.Default()
	}
	return &FontSet{
		RegularPath: regularPath,
		BoldPath:    boldPath,
		Logger:      logger,
		parsed:      make(map[string]*parsedFont),
		failed:      make(map[string]error),
	}
}

// Face returns a face of the requested style and pixel size. It never fails.
func (fs *FontSet) Face(style Style, size float64) font.Face {
	path := fs.RegularPath
	builtin := goregular.TTF
	if style == Bold {
		path = fs.BoldPath
		builtin = gobold.TTF
	}

	if face, err := fs.faceFromFile(path, size); err == nil {
		return face
	}

	key := "builtin:" + style.String()
	pf, ok := fs.parsed[key]
	if !ok {
		otf, err := opentype.Parse(builtin)
		if err != nil {
			fs.Logger.Warnf("Built-in font parse failed, using basicfont: %v", err)
			return basicfont.Face7x13
		}
		pf = &parsedFont{otf: otf}
		fs.parsed[key] = pf
	}
	face, err := pf.newFace(size)
	if err != nil {
		fs.Logger.Warnf("Built-in font face failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return face
}

func (fs *FontSet) faceFromFile(path string, size float64) (font.Face, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeFontLoad, "no font file configured")
	}
	if err, ok := fs.failed[path]; ok {
		return nil, err
	}
	pf, ok := fs.parsed[path]
	if !ok {
		var err error
		if pf, err = parseFontFile(path); err != nil {
			fs.failed[path] = err
			fs.Logger.Debugf("Using built-in font instead of %s: %v", path, err)
			return nil, err
		}
		fs.parsed[path] = pf
	}
	return pf.newFace(size)
}

// parseFontFile tries the opentype parser first and freetype's truetype
// parser second, which accepts some older TrueType files sfnt rejects.
func parseFontFile(path string) (*parsedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "read font")
	}
	otf, oerr := opentype.Parse(data)
	if oerr == nil {
		return &parsedFont{otf: otf}, nil
	}
	ttf, terr := truetype.Parse(data)
	if terr == nil {
		return &parsedFont{ttf: ttf}, nil
	}
	return nil, errors.Wrap(errors.ErrCodeFontLoad, oerr, "parse font %s", path)
}

func (pf *parsedFont) newFace(size float64) (font.Face, error) {
	if pf.ttf != nil {
		return truetype.NewFace(pf.ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
	}
	face, err := opentype.NewFace(pf.otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontLoad, err, "create face")
	}
	return face, nil
}

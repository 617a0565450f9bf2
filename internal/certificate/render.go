package certificate

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Card size in layout units. Render multiplies by Scale.
const (
	CardWidth  = 800
	CardHeight = 560
	Scale      = 2
)

var (
	colorPrimary   = color.NRGBA{0x7C, 0x3A, 0xED, 0xFF}
	colorSecondary = color.NRGBA{0x06, 0xB6, 0xD4, 0xFF}
	colorText      = color.NRGBA{0x1F, 0x29, 0x37, 0xFF}
	colorMuted     = color.NRGBA{0x6B, 0x72, 0x80, 0xFF}
	colorPaper     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorBadge     = color.NRGBA{0xF5, 0xF3, 0xFF, 0xFF}
)

// HangulFontPaths are tried in order when no font path is configured.
// TrueType collections (.ttc) cannot be parsed, so only .ttf files are listed.
var HangulFontPaths = []string{
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/nanum/NanumGothic.ttf",
	"/usr/share/fonts/opentype/nanum/NanumGothic.ttf",
	"/Library/Fonts/NanumGothic.ttf",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	"/Library/Fonts/AppleGothic.ttf",
	`C:\Windows\Fonts\malgun.ttf`,
}

// ErrMissingGlyphs is returned by Export when the loaded font cannot draw
// the student's details.
var ErrMissingGlyphs = errors.New("certificate: font has no glyphs for the card text")

// FindFont returns fontPath when it is set, otherwise the first candidate
// that exists. It returns "" when nothing is found.
func FindFont(fontPath string, candidates []string) string {
	if p := strings.TrimSpace(fontPath); p != "" {
		return p
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// Renderer draws cards. Faces are parsed once and sized per call.
type Renderer struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// NewRenderer loads the TrueType font at fontPath for all text. An empty
// path looks for an installed Hangul font and falls back to the bundled Go
// fonts, which can only draw Latin text.
func NewRenderer(fontPath string) (*Renderer, error) {
	return loadRenderer(FindFont(fontPath, HangulFontPaths))
}

func loadRenderer(fontPath string) (*Renderer, error) {
	if fontPath == "" {
		regular, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bundled font: %w", err)
		}
		bold, err := truetype.Parse(gobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bundled font: %w", err)
		}
		return &Renderer{regular: regular, bold: bold}, nil
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF %s: %w", fontPath, err)
	}
	return &Renderer{regular: parsed, bold: parsed}, nil
}

// Covers reports whether every visible rune of s has a glyph in both faces.
func (r *Renderer) Covers(s string) bool {
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		if r.regular.Index(ch) == 0 || r.bold.Index(ch) == 0 {
			return false
		}
	}
	return true
}

func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size * Scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Render draws the card at Scale times the layout size.
func (r *Renderer) Render(d Data) image.Image {
	const s = float64(Scale)
	w, h := float64(CardWidth), float64(CardHeight)

	dc := gg.NewContext(CardWidth*Scale, CardHeight*Scale)

	dc.SetColor(colorPaper)
	dc.Clear()

	// Frame
	dc.SetColor(colorPrimary)
	dc.SetLineWidth(6 * s)
	dc.DrawRoundedRectangle(16*s, 16*s, (w-32)*s, (h-32)*s, 18*s)
	dc.Stroke()
	dc.SetColor(colorSecondary)
	dc.SetLineWidth(2 * s)
	dc.DrawRoundedRectangle(28*s, 28*s, (w-56)*s, (h-56)*s, 12*s)
	dc.Stroke()

	// Heading
	dc.SetFontFace(r.face(r.bold, 36))
	dc.SetColor(colorPrimary)
	dc.DrawStringAnchored(Title, w/2*s, 80*s, 0.5, 0.5)
	dc.SetFontFace(r.face(r.regular, 12))
	dc.SetColor(colorMuted)
	dc.DrawStringAnchored(Subtitle, w/2*s, 112*s, 0.5, 0.5)

	// Holder: school and grade on the left, name on the right
	label := r.face(r.bold, 11)
	dc.SetFontFace(label)
	dc.SetColor(colorMuted)
	dc.DrawString("SCHOOL", 64*s, 146*s)
	dc.DrawString("GRADE", 64*s, 190*s)
	dc.DrawStringAnchored("NAME", (w-64)*s, 146*s, 1, 0)

	dc.SetColor(colorText)
	dc.SetFontFace(r.face(r.bold, 20))
	dc.DrawString(d.Profile.School, 64*s, 170*s)
	dc.SetFontFace(r.face(r.bold, 17))
	dc.DrawString(d.Profile.Grade, 64*s, 212*s)
	dc.SetFontFace(r.face(r.bold, 32))
	dc.SetColor(colorSecondary)
	dc.DrawStringAnchored(d.Profile.Name, (w-64)*s, 186*s, 1, 0)

	// Badges
	badges := Badges()
	const badgeW, badgeH, gap = 220.0, 110.0, 20.0
	left := (w - (badgeW*float64(len(badges)) + gap*float64(len(badges)-1))) / 2
	for i, b := range badges {
		x := left + float64(i)*(badgeW+gap)
		y := 244.0
		dc.SetColor(colorBadge)
		dc.DrawRoundedRectangle(x*s, y*s, badgeW*s, badgeH*s, 12*s)
		dc.Fill()
		dc.SetColor(colorPrimary)
		dc.SetLineWidth(1.5 * s)
		dc.DrawRoundedRectangle(x*s, y*s, badgeW*s, badgeH*s, 12*s)
		dc.Stroke()

		dc.SetFontFace(r.face(r.bold, 20))
		dc.SetColor(colorPrimary)
		dc.DrawStringAnchored(b.Title, (x+badgeW/2)*s, (y+42)*s, 0.5, 0.5)
		dc.SetFontFace(r.face(r.regular, 15))
		dc.SetColor(colorText)
		dc.DrawStringAnchored(b.Subtitle, (x+badgeW/2)*s, (y+74)*s, 0.5, 0.5)
	}

	// Statement and issuing line
	dc.SetFontFace(r.face(r.regular, 15))
	dc.SetColor(colorText)
	dc.DrawStringWrapped(Statement, 80*s, 384*s, 0, 0, (w-160)*s, 1.5, gg.AlignCenter)

	dc.SetFontFace(r.face(r.bold, 20))
	dc.SetColor(colorText)
	dc.DrawStringAnchored(d.Issuer, w/2*s, 462*s, 0.5, 0.5)
	dc.SetFontFace(r.face(r.regular, 12))
	dc.SetColor(colorMuted)
	dc.DrawStringAnchored(d.IssuedLine(), w/2*s, 492*s, 0.5, 0.5)

	return dc.Image()
}

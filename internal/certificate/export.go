package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ErrEmptyName is returned when exporting a card with no student name.
var ErrEmptyName = errors.New("certificate: student name is empty")

// ExportPDF writes img as a single landscape page sized to the image, one
// point per pixel, and returns the file path.
func ExportPDF(img image.Image, dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// Landscape swaps the page size, so it is given short side first.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: min(w, h), Ht: max(w, h)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("card", opts, &buf)
	pdf.ImageOptions("card", 0, 0, w, h, false, opts, 0, "")

	path := filepath.Join(dir, FileName(name))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Export renders d and writes it to dir. It refuses to write a card whose
// student details or issuer the font cannot draw.
func (r *Renderer) Export(d Data, dir string) (string, error) {
	p := d.Profile
	if !r.Covers(p.Name + p.School + p.Grade + d.Issuer) {
		return "", fmt.Errorf("%w (set certificate.font_path to a Hangul TrueType font)", ErrMissingGlyphs)
	}
	return ExportPDF(r.Render(d), dir, p.Name)
}

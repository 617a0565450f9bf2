package certificate

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/manasm11/academy/internal/session"
)

var (
	testProfile  = session.UserProfile{Name: "홍길동", School: "서울중학교", Grade: "1학년 3반"}
	latinProfile = session.UserProfile{Name: "Kim", School: "Seoul Middle School", Grade: "1-3"}
)

// goFontRenderer draws with the bundled Go fonts, whatever is installed.
func goFontRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := loadRenderer("")
	if err != nil {
		t.Fatalf("loadRenderer: %v", err)
	}
	return r
}

func TestFormatDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), "2025년 3월 7일"},
		{time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC), "2024년 12월 25일"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want string
	}{
		{"홍길동", "AI_License_홍길동.pdf"},
		{"  Kim  ", "AI_License_Kim.pdf"},
		{"../etc/passwd", "AI_License_.._etc_passwd.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.name); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewData_DefaultIssuer(t *testing.T) {
	t.Parallel()
	d := NewData(session.UserProfile{Name: " 홍길동 ", School: "서울중학교", Grade: "1학년"}, "", time.Now())
	if d.Issuer != DefaultIssuer {
		t.Errorf("Issuer = %q", d.Issuer)
	}
	if d.Profile.Name != "홍길동" {
		t.Errorf("Name = %q, want trimmed", d.Profile.Name)
	}
}

func TestBadges(t *testing.T) {
	t.Parallel()
	b := Badges()
	if len(b) != 3 {
		t.Fatalf("len = %d, want 3", len(b))
	}
	want := []string{"Prompt Master", "Thinking Partner", "Fact Checker"}
	for i, w := range want {
		if b[i].Title != w {
			t.Errorf("badge[%d] = %q, want %q", i, b[i].Title, w)
		}
	}
}

func TestRender_Size(t *testing.T) {
	t.Parallel()
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img := r.Render(NewData(testProfile, "", time.Now()))
	b := img.Bounds()
	if b.Dx() != CardWidth*Scale || b.Dy() != CardHeight*Scale {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), CardWidth*Scale, CardHeight*Scale)
	}
}

func TestNewRenderer_MissingFont(t *testing.T) {
	t.Parallel()
	if _, err := NewRenderer(filepath.Join(t.TempDir(), "nope.ttf")); err == nil {
		t.Error("expected error for missing font")
	}
}

func TestExport_WritesPDF(t *testing.T) {
	t.Parallel()
	r := goFontRenderer(t)
	dir := filepath.Join(t.TempDir(), "out")

	path, err := r.Export(NewData(latinProfile, "AI Academy", time.Now()), dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Base(path) != "AI_License_Kim.pdf" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("file does not start with %%PDF: %q", data[:min(len(data), 8)])
	}
}

func TestExport_BadDir(t *testing.T) {
	t.Parallel()
	r := goFontRenderer(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Export(NewData(latinProfile, "AI Academy", time.Now()), blocker); err == nil {
		t.Error("expected error when export dir is a file")
	}
}

func TestExport_RefusesMissingGlyphs(t *testing.T) {
	t.Parallel()
	r := goFontRenderer(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		data Data
	}{
		{"hangul student", NewData(testProfile, "AI Academy", time.Now())},
		{"hangul issuer", NewData(latinProfile, "", time.Now())},
	}
	for _, tt := range tests {
		if _, err := r.Export(tt.data, dir); !errors.Is(err, ErrMissingGlyphs) {
			t.Errorf("%s: err = %v, want ErrMissingGlyphs", tt.name, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no file should be written, found %d", len(entries))
	}
}

func TestRenderer_Covers(t *testing.T) {
	t.Parallel()
	r := goFontRenderer(t)
	tests := []struct {
		in   string
		want bool
	}{
		{"Kim", true},
		{"Seoul Middle School 1-3", true},
		{"", true},
		{"홍길동", false},
		{"Kim 홍", false},
	}
	for _, tt := range tests {
		if got := r.Covers(tt.in); got != tt.want {
			t.Errorf("Covers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRenderer_InstalledHangulFont(t *testing.T) {
	t.Parallel()
	path := FindFont("", HangulFontPaths)
	if path == "" {
		t.Skip("no Hangul font installed")
	}
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if !r.Covers("홍길동서울중학교발급일자" + DefaultIssuer) {
		t.Errorf("%s should draw Hangul", path)
	}
}

func TestFindFont(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	present := filepath.Join(dir, "present.ttf")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.ttf")

	tests := []struct {
		name       string
		path       string
		candidates []string
		want       string
	}{
		{"configured path wins", "/fonts/mine.ttf", []string{present}, "/fonts/mine.ttf"},
		{"first existing candidate", "", []string{missing, dir, present}, present},
		{"nothing found", " ", []string{missing}, ""},
		{"no candidates", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FindFont(tt.path, tt.candidates); got != tt.want {
				t.Errorf("FindFont() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportPDF_EmptyName(t *testing.T) {
	t.Parallel()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, err := ExportPDF(img, t.TempDir(), "  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

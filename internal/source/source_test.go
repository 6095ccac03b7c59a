package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/daviddoria/BinaryImageToPoints/internal/extract"
	"github.com/daviddoria/BinaryImageToPoints/internal/testutil"
)

// checker returns a w×h gray image where pixels with even x+y are black.
func checker(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(io.Writer) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestFileSourceFormats(t *testing.T) {
	want := checker(5, 4)

	tests := []struct {
		name   string
		encode func(io.Writer) error
	}{
		{"img.png", func(w io.Writer) error { return png.Encode(w, want) }},
		{"img.bmp", func(w io.Writer) error { return bmp.Encode(w, want) }},
		{"img.tif", func(w io.Writer) error { return tiff.Encode(w, want, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.encode)

			got, err := (&FileSource{}).Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got.Bounds() != want.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", want.Bounds(), got.Bounds())
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 5; x++ {
					if got.GrayAt(x, y) != want.GrayAt(x, y) {
						t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want.GrayAt(x, y), got.GrayAt(x, y))
					}
				}
			}
		})
	}
}

func TestFileSourceColorInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	path := writeFile(t, "rgba.png", func(w io.Writer) error { return png.Encode(w, img) })

	got, err := (&FileSource{}).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v := got.GrayAt(0, 0).Y; v != 0 {
		t.Errorf("Expected black to stay 0, got %d", v)
	}
	if v := got.GrayAt(1, 0).Y; v == 0 {
		t.Errorf("Expected red to be non-zero, got %d", v)
	}
}

func TestFileSourceErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.png"), garbage} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			img, err := (&FileSource{}).Load(path)
			if img != nil {
				t.Error("Expected nil image")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Expected LoadError, got %v", err)
			}
			if le.Path != path {
				t.Errorf("Expected path %s, got %s", path, le.Path)
			}
		})
	}
}

func TestPDFSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")
	_, err := (&PDFSource{DPI: 72}).Load(path)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LoadError, got %v", err)
	}
}

func TestPDFSourceRendersPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.pdf")
	testutil.WritePDF(t, path)

	img, err := New(path, 72).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantBounds := image.Rectangle{Max: testutil.PDFPageSize}
	if img.Bounds() != wantBounds {
		t.Fatalf("Expected bounds %v, got %v", wantBounds, img.Bounds())
	}

	rect := testutil.PDFBlackRect
	inner := rect.Inset(1)
	for y := 0; y < wantBounds.Max.Y; y++ {
		for x := 0; x < wantBounds.Max.X; x++ {
			p := image.Pt(x, y)
			v := img.GrayAt(x, y).Y
			switch {
			case p.In(inner) && v != 0:
				t.Errorf("Pixel %v inside the rectangle: expected 0, got %d", p, v)
			case !p.In(rect) && v == 0:
				t.Errorf("Pixel %v outside the rectangle is black", p)
			}
		}
	}

	n := extract.Count(img)
	if n < inner.Dx()*inner.Dy() || n > rect.Dx()*rect.Dy() {
		t.Errorf("Expected between %d and %d black pixels, got %d", inner.Dx()*inner.Dy(), rect.Dx()*rect.Dy(), n)
	}
}

func TestGrayOfRejectsEmptyImage(t *testing.T) {
	img, err := grayOf("empty.png", image.NewRGBA(image.Rect(4, 4, 4, 9)))
	if img != nil {
		t.Error("Expected nil image")
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Path != "empty.png" {
		t.Fatalf("Expected LoadError for empty.png, got %v", err)
	}

	gray, err := grayOf("one.png", image.NewGray(image.Rect(0, 0, 1, 1)))
	if err != nil || gray == nil {
		t.Errorf("Expected a 1x1 image, got %v, %v", gray, err)
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("drawing.PDF", 96).(*PDFSource); !ok {
		t.Error("Expected PDFSource for .PDF")
	}
	if s, ok := New("drawing.pdf", 96).(*PDFSource); !ok || s.DPI != 96 {
		t.Errorf("Expected PDFSource with DPI 96, got %#v", s)
	}
	if _, ok := New("drawing.png", 96).(*FileSource); !ok {
		t.Error("Expected FileSource for .png")
	}
}

func TestToGrayKeepsGray(t *testing.T) {
	img := image.NewGray(image.Rect(3, 7, 5, 9))
	if ToGray(img) != img {
		t.Error("Expected the same *image.Gray back")
	}

	pal := image.NewPaletted(image.Rect(3, 7, 5, 9), color.Palette{color.White, color.Black})
	pal.SetColorIndex(4, 8, 1)
	gray := ToGray(pal)
	if gray.Bounds() != pal.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", pal.Bounds(), gray.Bounds())
	}
	if gray.GrayAt(4, 8).Y != 0 || gray.GrayAt(3, 7).Y != 255 {
		t.Errorf("Unexpected conversion: %v %v", gray.GrayAt(4, 8), gray.GrayAt(3, 7))
	}
}

package source

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
)

// ImageSource loads a single-channel 8-bit raster from a file.
type ImageSource interface {
	Load(path string) (*image.Gray, error)
}

// LoadError reports an input that is missing, unreadable or undecodable.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// New picks the loader for path: PDF documents are rasterised, everything
// else goes through the registered image decoders.
func New(path string, dpi int) ImageSource {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &PDFSource{DPI: dpi}
	}
	return &FileSource{}
}

// PDFSource renders the first page of a PDF document via MuPDF.
type PDFSource struct {
	DPI int
}

func (s *PDFSource) Load(path string) (*image.Gray, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("document has no pages")}
	}

	img, err := doc.ImageDPI(0, float64(s.DPI))
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("render page 0: %w", err)}
	}
	return grayOf(path, img)
}

// grayOf converts a decoded or rendered raster, rejecting one without pixels.
func grayOf(path string, img image.Image) (*image.Gray, error) {
	if img.Bounds().Empty() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("image has no pixels")}
	}
	return ToGray(img), nil
}

// ToGray returns img as an 8-bit gray grid with the same bounds. Gray
// images are returned as is; others go through the luminance model.
func ToGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

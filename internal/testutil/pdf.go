// Package testutil builds input fixtures shared by the package tests.
package testutil

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"testing"
)

// PDFPageSize is the MediaBox of pages written by WritePDF, in points.
var PDFPageSize = image.Pt(40, 30)

// PDFBlackRect is the filled rectangle drawn by WritePDF, in raster
// coordinates at 72 DPI (y grows downwards).
var PDFBlackRect = image.Rect(10, 15, 30, 25)

// WritePDF writes a one-page PDF to path: a white page of PDFPageSize with
// a black filled rectangle covering PDFBlackRect.
func WritePDF(t *testing.T, path string) {
	t.Helper()

	w, h := PDFPageSize.X, PDFPageSize.Y
	r := PDFBlackRect
	// PDF user space has its origin at the bottom left.
	content := fmt.Sprintf("1 1 1 rg 0 0 %d %d re f\n0 0 0 rg %d %d %d %d re f\n",
		w, h, r.Min.X, h-r.Max.Y, r.Dx(), r.Dy())

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 4 0 R /Resources << >> >>", w, h),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

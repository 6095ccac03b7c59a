package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FileSource decodes any raster format registered with the image package.
type FileSource struct{}

func (s *FileSource) Load(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return grayOf(path, img)
}

package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/daviddoria/BinaryImageToPoints/internal/geometry"
)

// PointSink serializes a point set to path.
type PointSink interface {
	Write(points geometry.PointSet, path string) error
}

// WriteError reports an output that could not be produced. No file is left
// at Path when it is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// DefaultFormat is used for unknown or missing extensions.
const DefaultFormat = "vtp"

type encodeFunc func(w io.Writer, points geometry.PointSet) error

var encoders = map[string]encodeFunc{
	"vtp":  encodeVTP,
	"ply":  encodePLY,
	"pcd":  encodePCD,
	"asc":  encodeASC,
	"xyz":  encodeXYZ,
	"yaml": encodeYAML,
	"yml":  encodeYAML,
}

// Formats lists the recognised output extensions.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileSink writes one of the registered formats.
type FileSink struct {
	Format string
	encode encodeFunc
}

// ForFormat returns the sink for a lower-case extension. Unknown formats
// get the VTK PolyData writer.
func ForFormat(format string) *FileSink {
	enc, ok := encoders[format]
	if !ok {
		format, enc = DefaultFormat, encoders[DefaultFormat]
	}
	return &FileSink{Format: format, encode: enc}
}

func (s *FileSink) Write(points geometry.PointSet, path string) error {
	err := writeAtomic(path, func(w io.Writer) error {
		return s.encode(w, points)
	})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// writeAtomic encodes into a temp file next to path and renames it into
// place, so path either holds the complete output or is untouched. A
// symlink at path is followed and its target replaced; an existing file
// keeps its permission bits, new files get 0644.
func writeAtomic(path string, encode func(io.Writer) error) (err error) {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(target); err == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = encode(bw); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

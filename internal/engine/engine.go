package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/daviddoria/BinaryImageToPoints/internal/config"
	"github.com/daviddoria/BinaryImageToPoints/internal/extract"
	"github.com/daviddoria/BinaryImageToPoints/internal/geometry"
	"github.com/daviddoria/BinaryImageToPoints/internal/source"
	"github.com/daviddoria/BinaryImageToPoints/internal/writer"
)

// Project converts one image into one point file.
type Project struct {
	Config *config.Config
	Source source.ImageSource
	Sink   writer.PointSink
	Out    io.Writer // progress lines; os.Stdout when nil
}

func NewProject(cfg *config.Config, src source.ImageSource, sink writer.PointSink) *Project {
	return &Project{
		Config: cfg,
		Source: src,
		Sink:   sink,
		Out:    os.Stdout,
	}
}

// Run loads the input, extracts the black pixels and writes them as points.
// Load and write failures are returned unchanged so callers can inspect
// them with errors.As.
func (p *Project) Run() error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "[*] Reading %s\n", p.Config.InputPath)
	img, err := p.Source.Load(p.Config.InputPath)
	if err != nil {
		return err
	}

	pixels := extract.BlackPixels(img)
	fmt.Fprintf(out, "[*] Pixel list has %d points\n", len(pixels))

	points := geometry.FromPixels(pixels)
	fmt.Fprintf(out, "[*] Point set has %d points\n", points.Len())

	if err := p.Sink.Write(points, p.Config.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "[+++] Wrote %s\n", p.Config.OutputPath)
	return nil
}

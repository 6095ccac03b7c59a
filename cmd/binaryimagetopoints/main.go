// Command binaryimagetopoints turns the black pixels of a binary image into
// a point cloud, one point (x, y, 0) per pixel with intensity 0.
//
// Usage:
//
//	binaryimagetopoints input.png output.vtp
//
// The output format follows the extension: .vtp, .ply, .pcd, .asc, .xyz,
// .yaml. Anything else is written as VTK PolyData.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/daviddoria/BinaryImageToPoints/internal/config"
	"github.com/daviddoria/BinaryImageToPoints/internal/engine"
	"github.com/daviddoria/BinaryImageToPoints/internal/source"
	"github.com/daviddoria/BinaryImageToPoints/internal/writer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	cfg, err := config.FromArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintf(stderr, "Output formats: %s (default %s)\n", strings.Join(writer.Formats(), ", "), writer.DefaultFormat)
		return 1
	}

	project := engine.NewProject(cfg, source.New(cfg.InputPath, cfg.DPI), writer.ForFormat(cfg.Format))
	project.Out = stdout

	if err := project.Run(); err != nil {
		var le *source.LoadError
		var we *writer.WriteError
		switch {
		case errors.As(err, &le):
			logger.Printf("[-] Could not read image: %v", err)
		case errors.As(err, &we):
			logger.Printf("[-] Could not write points: %v", err)
		default:
			logger.Printf("[-] Error: %v", err)
		}
		return 1
	}

	return 0
}

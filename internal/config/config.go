package config

import (
	"path/filepath"
	"strings"
)

// Usage is printed to stderr when the positional arguments are missing.
const Usage = "Required arguments: inputFileName.png outputFileName.vtp"

// DefaultDPI is the rasterisation resolution for PDF inputs.
const DefaultDPI = 72

// Config holds one conversion run, built from the command line.
type Config struct {
	InputPath  string
	OutputPath string
	Format     string // lower-case output extension without the dot
	DPI        int
}

// UsageError reports a command line that does not name both files.
type UsageError struct{}

func (e *UsageError) Error() string {
	return Usage
}

// FromArgs builds a Config from the positional arguments (program name
// excluded). Arguments after the second are ignored.
func FromArgs(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, &UsageError{}
	}

	return &Config{
		InputPath:  args[0],
		OutputPath: args[1],
		Format:     FormatOf(args[1]),
		DPI:        DefaultDPI,
	}, nil
}

// FormatOf returns the lower-case extension of path without the leading dot.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

package writer

import (
	"fmt"
	"io"

	"github.com/daviddoria/BinaryImageToPoints/internal/geometry"
)

func encodePLY(w io.Writer, points geometry.PointSet) error {
	header := "ply\n" +
		"format ascii 1.0\n" +
		"comment black pixels of a binary image\n" +
		fmt.Sprintf("element vertex %d\n", points.Len()) +
		"property double x\n" +
		"property double y\n" +
		"property double z\n" +
		"end_header\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return writeRows(w, points)
}

// encodePCD writes an unorganized ASCII cloud in PCD v0.7.
func encodePCD(w io.Writer, points geometry.PointSet) error {
	n := points.Len()
	header := "# .PCD v0.7 - Point Cloud Data file format\n" +
		"VERSION 0.7\n" +
		"FIELDS x y z\n" +
		"SIZE 8 8 8\n" +
		"TYPE F F F\n" +
		"COUNT 1 1 1\n" +
		fmt.Sprintf("WIDTH %d\n", n) +
		"HEIGHT 1\n" +
		"VIEWPOINT 0 0 0 1 0 0 0\n" +
		fmt.Sprintf("POINTS %d\n", n) +
		"DATA ascii\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return writeRows(w, points)
}

// encodeASC writes a CloudCompare-compatible .asc file.
func encodeASC(w io.Writer, points geometry.PointSet) error {
	if _, err := io.WriteString(w, "# Exported points\n# Format: X Y Z\n"); err != nil {
		return err
	}
	for _, p := range points.Points {
		if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return nil
}

func encodeXYZ(w io.Writer, points geometry.PointSet) error {
	return writeRows(w, points)
}

func writeRows(w io.Writer, points geometry.PointSet) error {
	for _, p := range points.Points {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z)); err != nil {
			return err
		}
	}
	return nil
}

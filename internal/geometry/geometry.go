package geometry

import (
	"image"

	"gonum.org/v1/gonum/spatial/r3"
)

// PointSet is an ordered collection of 3D points.
type PointSet struct {
	Points []r3.Vec
}

// FromPixels places one point at (x, y, 0) for every pixel, in order.
func FromPixels(pixels []image.Point) PointSet {
	points := make([]r3.Vec, len(pixels))
	for i, p := range pixels {
		points[i] = r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: 0}
	}
	return PointSet{Points: points}
}

func (s PointSet) Len() int {
	return len(s.Points)
}

// Bounds returns the axis-aligned box enclosing every point. The zero Box
// is returned for an empty set.
func (s PointSet) Bounds() r3.Box {
	if len(s.Points) == 0 {
		return r3.Box{}
	}
	box := r3.Box{Min: s.Points[0], Max: s.Points[0]}
	for _, p := range s.Points[1:] {
		box.Min = r3.Vec{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = r3.Vec{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	return box
}

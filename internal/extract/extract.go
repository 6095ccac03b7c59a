package extract

import "image"

// Black is the only intensity treated as a point.
const Black uint8 = 0

// BlackPixels returns the coordinates of every pixel with intensity 0,
// scanning row by row from img.Bounds().Min.
func BlackPixels(img *image.Gray) []image.Point {
	pixels := make([]image.Point, 0, Count(img))

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if row[x-bounds.Min.X] == Black {
				pixels = append(pixels, image.Point{X: x, Y: y})
			}
		}
	}

	return pixels
}

// Count returns the number of pixels BlackPixels would return.
func Count(img *image.Gray) int {
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.GrayAt(x, y).Y == Black {
				n++
			}
		}
	}
	return n
}

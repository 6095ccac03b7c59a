package writer

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/daviddoria/BinaryImageToPoints/internal/geometry"
)

// VTK XML PolyData, ASCII encoding. Every point also gets a vertex cell so
// viewers render it.
type vtkFile struct {
	XMLName   xml.Name    `xml:"VTKFile"`
	Type      string      `xml:"type,attr"`
	Version   string      `xml:"version,attr"`
	ByteOrder string      `xml:"byte_order,attr"`
	PolyData  vtkPolyData `xml:"PolyData"`
}

type vtkPolyData struct {
	Piece vtkPiece `xml:"Piece"`
}

type vtkPiece struct {
	NumberOfPoints int       `xml:"NumberOfPoints,attr"`
	NumberOfVerts  int       `xml:"NumberOfVerts,attr"`
	NumberOfLines  int       `xml:"NumberOfLines,attr"`
	NumberOfStrips int       `xml:"NumberOfStrips,attr"`
	NumberOfPolys  int       `xml:"NumberOfPolys,attr"`
	Points         vtkPoints `xml:"Points"`
	Verts          vtkCells  `xml:"Verts"`
}

type vtkPoints struct {
	DataArray vtkDataArray `xml:"DataArray"`
}

type vtkCells struct {
	DataArrays []vtkDataArray `xml:"DataArray"`
}

type vtkDataArray struct {
	Type               string `xml:"type,attr"`
	Name               string `xml:"Name,attr,omitempty"`
	NumberOfComponents int    `xml:"NumberOfComponents,attr,omitempty"`
	Format             string `xml:"format,attr"`
	Data               string `xml:",chardata"`
}

func encodeVTP(w io.Writer, points geometry.PointSet) error {
	n := points.Len()

	var coords, conn, offsets strings.Builder
	for i, p := range points.Points {
		if i > 0 {
			coords.WriteByte(' ')
			conn.WriteByte(' ')
			offsets.WriteByte(' ')
		}
		coords.WriteString(formatCoord(p.X) + " " + formatCoord(p.Y) + " " + formatCoord(p.Z))
		conn.WriteString(strconv.Itoa(i))
		offsets.WriteString(strconv.Itoa(i + 1))
	}

	doc := vtkFile{
		Type:      "PolyData",
		Version:   "0.1",
		ByteOrder: "LittleEndian",
		PolyData: vtkPolyData{Piece: vtkPiece{
			NumberOfPoints: n,
			NumberOfVerts:  n,
			Points: vtkPoints{DataArray: vtkDataArray{
				Type:               "Float64",
				NumberOfComponents: 3,
				Format:             "ascii",
				Data:               coords.String(),
			}},
			Verts: vtkCells{DataArrays: []vtkDataArray{
				{Type: "Int64", Name: "connectivity", Format: "ascii", Data: conn.String()},
				{Type: "Int64", Name: "offsets", Format: "ascii", Data: offsets.String()},
			}},
		}},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

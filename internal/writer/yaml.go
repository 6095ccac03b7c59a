package writer

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/daviddoria/BinaryImageToPoints/internal/geometry"
)

type yamlCloud struct {
	Count  int          `yaml:"count"`
	Bounds *yamlBounds  `yaml:"bounds,omitempty"`
	Points []yamlVertex `yaml:"points"`
}

type yamlBounds struct {
	Min yamlVertex `yaml:"min"`
	Max yamlVertex `yaml:"max"`
}

// yamlVertex is emitted as a flow sequence: [x, y, z]
type yamlVertex r3.Vec

func (v yamlVertex) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range []float64{v.X, v.Y, v.Z} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatCoord(c)})
	}
	return node, nil
}

func encodeYAML(w io.Writer, points geometry.PointSet) error {
	doc := yamlCloud{
		Count:  points.Len(),
		Points: make([]yamlVertex, points.Len()),
	}
	for i, p := range points.Points {
		doc.Points[i] = yamlVertex(p)
	}
	if points.Len() > 0 {
		box := points.Bounds()
		doc.Bounds = &yamlBounds{Min: yamlVertex(box.Min), Max: yamlVertex(box.Max)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"deedles.dev/axisspace"
	"deedles.dev/axisspace/geom"
)

var reportEdges = [...]geom.Edges{geom.EdgeTop, geom.EdgeBottom, geom.EdgeLeft, geom.EdgeRight}

// Rect is the JSON form of a rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newRect(r geom.Rect[float64]) Rect {
	return Rect{X: r.X(), Y: r.Y(), Width: r.Dx(), Height: r.Dy()}
}

func (r Rect) String() string {
	return fmt.Sprintf("x=%g y=%g w=%g h=%g", r.X, r.Y, r.Width, r.Height)
}

// Band is the area reserved at one edge.
type Band struct {
	Edge geom.Edges `json:"edge"`
	Rect Rect       `json:"rect"`
}

// Report is the result of the layout command.
type Report struct {
	Space    axisspace.Space `json:"space"`
	Area     Rect            `json:"area"`
	DataArea Rect            `json:"data_area"`
	Reserved []Band          `json:"reserved"`
}

// NewReport describes the data area and reserved bands that s
// produces within area.
func NewReport(s *axisspace.Space, area geom.Rect[float64]) *Report {
	return &Report{
		Space:    *s,
		Area:     newRect(area),
		DataArea: newRect(s.Shrink(area)),
		Reserved: reservedBands(s, area),
	}
}

// reservedBands returns the band s reserves at each edge of area.
func reservedBands(s *axisspace.Space, area geom.Rect[float64]) []Band {
	bands := make([]Band, 0, len(reportEdges))
	for _, edge := range reportEdges {
		band, _ := s.Reserved(area, edge)
		bands = append(bands, Band{Edge: edge, Rect: newRect(band)})
	}
	return bands
}

// WriteJSON writes r to w as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteText writes a styled, human-readable version of r to w.
func (r *Report) WriteText(w io.Writer) error {
	var buf strings.Builder
	buf.WriteString(StyleTitle.Render("Axis space"))
	buf.WriteByte('\n')
	writeField(&buf, "space", r.Space.String())
	writeField(&buf, "area", r.Area.String())
	writeField(&buf, "data area", r.DataArea.String())

	buf.WriteByte('\n')
	buf.WriteString(StyleTitle.Render("Reserved"))
	buf.WriteByte('\n')
	for _, band := range r.Reserved {
		writeField(&buf, band.Edge.String(), band.Rect.String())
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

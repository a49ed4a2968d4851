package axisspace

import (
	"errors"
	"fmt"

	"deedles.dev/axisspace/geom"
)

var (
	// ErrInvalidArgument is returned when an operation that needs an
	// edge is given geom.EdgeNone.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an edge selector is not one of
	// the four single edges, such as a combination of several.
	ErrInvalidState = errors.New("invalid state")
)

// field returns a pointer to the field of s that corresponds to edge.
func (s *Space) field(edge geom.Edges) (*float64, error) {
	switch edge {
	case geom.EdgeNone:
		return nil, fmt.Errorf("edge is required: %w", ErrInvalidArgument)
	case geom.EdgeTop:
		return &s.Top, nil
	case geom.EdgeBottom:
		return &s.Bottom, nil
	case geom.EdgeLeft:
		return &s.Left, nil
	case geom.EdgeRight:
		return &s.Right, nil
	default:
		return nil, fmt.Errorf("unrecognized edge %v: %w", edge, ErrInvalidState)
	}
}

// Add adds amount to the space at the given edge. On error, s is left
// unmodified.
func (s *Space) Add(amount float64, edge geom.Edges) error {
	f, err := s.field(edge)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	*f += amount
	return nil
}

// EnsureAtLeast raises each edge of s to at least the corresponding
// edge of other. No edge of s is ever decreased.
func (s *Space) EnsureAtLeast(other Space) {
	s.Top = max(s.Top, other.Top)
	s.Bottom = max(s.Bottom, other.Bottom)
	s.Left = max(s.Left, other.Left)
	s.Right = max(s.Right, other.Right)
}

// EnsureAtLeastEdge raises the space at the given edge to amount if it
// is currently smaller. It fails in the same cases as Add.
func (s *Space) EnsureAtLeastEdge(amount float64, edge geom.Edges) error {
	f, err := s.field(edge)
	if err != nil {
		return fmt.Errorf("ensure at least: %w", err)
	}
	if *f < amount {
		*f = amount
	}
	return nil
}

// Shrink returns area inset by s. Nothing stops the result from
// having a negative width or height if s is larger than area.
func (s *Space) Shrink(area geom.Rect[float64]) geom.Rect[float64] {
	return geom.XYWH(
		area.X()+s.Left,
		area.Y()+s.Top,
		area.Dx()-s.Left-s.Right,
		area.Dy()-s.Top-s.Bottom,
	)
}

// Expand returns area outset by s. It is the inverse of Shrink.
func (s *Space) Expand(area geom.Rect[float64]) geom.Rect[float64] {
	return geom.XYWH(
		area.X()-s.Left,
		area.Y()-s.Top,
		area.Dx()+s.Left+s.Right,
		area.Dy()+s.Top+s.Bottom,
	)
}

// ShrinkInto is like Shrink but stores the result in dst, allocating
// a new rectangle if dst is nil. It returns dst.
func (s *Space) ShrinkInto(area geom.Rect[float64], dst *geom.Rect[float64]) *geom.Rect[float64] {
	if dst == nil {
		dst = new(geom.Rect[float64])
	}
	*dst = s.Shrink(area)
	return dst
}

// ExpandInto is like Expand but stores the result in dst, allocating
// a new rectangle if dst is nil. It returns dst.
func (s *Space) ExpandInto(area geom.Rect[float64], dst *geom.Rect[float64]) *geom.Rect[float64] {
	if dst == nil {
		dst = new(geom.Rect[float64])
	}
	*dst = s.Expand(area)
	return dst
}

// Reserved returns the part of area that is taken up by the space at
// the given edge. The second return value is false if edge is not a
// single edge.
//
// The band for EdgeBottom is s.Bottom tall but its origin is placed
// s.Top above the bottom of area, not s.Bottom. Existing layouts
// depend on that placement, so it is kept. Use geom.Band with
// s.Bottom for a band that sits flush against the bottom edge.
func (s *Space) Reserved(area geom.Rect[float64], edge geom.Edges) (geom.Rect[float64], bool) {
	switch edge {
	case geom.EdgeTop:
		return geom.Band(area, edge, s.Top)
	case geom.EdgeBottom:
		return geom.XYWH(area.X(), area.MaxY()-s.Top, area.Dx(), s.Bottom), true
	case geom.EdgeLeft:
		return geom.Band(area, edge, s.Left)
	case geom.EdgeRight:
		return geom.Band(area, edge, s.Right)
	default:
		return geom.Rect[float64]{}, false
	}
}

// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// works with any numeric type, including the floating point drawing
// units used for chart layout.
package geom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// ErrUnknownEdge is returned when parsing an edge name that is not
// recognized.
var ErrUnknownEdge = errors.New("unknown edge")

// Edges is a bitmask representing zero or more edges of a rectangle.
// Functions that operate on a single side of a rectangle expect
// exactly one of EdgeTop, EdgeBottom, EdgeLeft or EdgeRight.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

var edgeNames = [...]struct {
	edge Edges
	name string
}{
	{EdgeTop, "top"},
	{EdgeBottom, "bottom"},
	{EdgeLeft, "left"},
	{EdgeRight, "right"},
}

// Single reports whether e names exactly one of the four edges.
func (e Edges) Single() bool {
	switch e {
	case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight:
		return true
	default:
		return false
	}
}

// Has reports whether every edge in o is also set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}

// String returns the edge names joined with "|", such as "top|left".
// Bits that do not correspond to an edge are printed in hex.
func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var names []string
	rem := e
	for _, n := range edgeNames {
		if e&n.edge != 0 {
			names = append(names, n.name)
			rem &^= n.edge
		}
	}
	if rem != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rem)))
	}
	return strings.Join(names, "|")
}

// ParseEdges parses the format produced by String. Names are case
// insensitive and surrounding whitespace is ignored.
func ParseEdges(s string) (Edges, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") || s == "" {
		return EdgeNone, nil
	}

	var e Edges
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		edge, ok := lookupEdge(part)
		if !ok {
			return EdgeNone, fmt.Errorf("%w: %q", ErrUnknownEdge, part)
		}
		e |= edge
	}
	return e, nil
}

func lookupEdge(name string) (Edges, bool) {
	for _, n := range edgeNames {
		if strings.EqualFold(n.name, name) {
			return n.edge, true
		}
	}
	return EdgeNone, false
}

func (e Edges) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Edges) UnmarshalText(text []byte) error {
	v, err := ParseEdges(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

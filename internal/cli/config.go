package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"deedles.dev/axisspace"
	"deedles.dev/axisspace/geom"
)

// ErrUnknownKeys is returned when a layout file contains keys that do
// not belong to the schema.
var ErrUnknownKeys = errors.New("unknown keys")

// Layout is the decoded form of a layout file.
type Layout struct {
	Area Area `toml:"area"`

	// Minimum, if set, is applied after all of the axes with
	// Space.EnsureAtLeast.
	Minimum *axisspace.Space `toml:"minimum"`

	Axes []Axis `toml:"axis"`
}

// Area is the outer plot area.
type Area struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect returns a as a rectangle.
func (a Area) Rect() geom.Rect[float64] {
	return geom.XYWH(a.X, a.Y, a.Width, a.Height)
}

// Axis describes one axis and the space it needs.
type Axis struct {
	Name string     `toml:"name"`
	Edge geom.Edges `toml:"edge"`
	Size float64    `toml:"size"`
	Mode Mode       `toml:"mode"`
}

func (a Axis) label(i int) string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("axis %d", i)
}

// Mode selects how an axis's size is combined with the space already
// reserved at its edge.
type Mode string

const (
	// ModeAdd stacks the axis outside of any already at the edge.
	ModeAdd Mode = "add"

	// ModeAtLeast makes sure the edge has at least the axis's size,
	// such as when several axes share the same band.
	ModeAtLeast Mode = "at-least"
)

func (m *Mode) UnmarshalText(text []byte) error {
	switch v := Mode(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case "", ModeAdd:
		*m = ModeAdd
	case ModeAtLeast:
		*m = v
	default:
		return fmt.Errorf("unknown mode %q", text)
	}
	return nil
}

// LoadLayout reads and decodes the layout file at path.
func LoadLayout(path string) (*Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return DecodeLayout(file)
}

// DecodeLayout decodes a layout file from r. Keys that are not part
// of the schema are reported as an error wrapping ErrUnknownKeys.
func DecodeLayout(r io.Reader) (*Layout, error) {
	var layout Layout
	md, err := toml.NewDecoder(r).Decode(&layout)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	for i := range layout.Axes {
		if layout.Axes[i].Mode == "" {
			layout.Axes[i].Mode = ModeAdd
		}
	}

	return &layout, nil
}

// Space accumulates the space needed by every axis in l, in order,
// and then applies l.Minimum. Each step is logged at debug level.
func (l *Layout) Space(logger *log.Logger) (*axisspace.Space, error) {
	s := axisspace.New()
	for i, axis := range l.Axes {
		var err error
		switch axis.Mode {
		case ModeAtLeast:
			err = s.EnsureAtLeastEdge(axis.Size, axis.Edge)
		default:
			err = s.Add(axis.Size, axis.Edge)
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", axis.label(i), err)
		}

		logger.Debug("reserved axis space", "axis", axis.label(i), "edge", axis.Edge, "size", axis.Size, "mode", axis.Mode, "space", s)
	}

	if l.Minimum != nil {
		s.EnsureAtLeast(*l.Minimum)
		logger.Debug("applied minimum", "minimum", l.Minimum, "space", s)
	}

	return s, nil
}

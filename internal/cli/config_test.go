package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"deedles.dev/axisspace"
	"deedles.dev/axisspace/geom"
)

const testLayout = `
[area]
x = 0.0
y = 0.0
width = 100.0
height = 200.0

[[axis]]
name = "domain"
edge = "bottom"
size = 20.0

[[axis]]
name = "range"
edge = "left"
size = 5.0

[[axis]]
name = "secondary"
edge = "right"
size = 5.0
mode = "at-least"

[minimum]
top = 10.0
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDecodeLayout(t *testing.T) {
	layout, err := DecodeLayout(strings.NewReader(testLayout))
	require.Nil(t, err)

	require.Equal(t, geom.XYWH(0.0, 0, 100, 200), layout.Area.Rect())
	require.Equal(t, []Axis{
		{Name: "domain", Edge: geom.EdgeBottom, Size: 20, Mode: ModeAdd},
		{Name: "range", Edge: geom.EdgeLeft, Size: 5, Mode: ModeAdd},
		{Name: "secondary", Edge: geom.EdgeRight, Size: 5, Mode: ModeAtLeast},
	}, layout.Axes)
	require.Equal(t, &axisspace.Space{Top: 10}, layout.Minimum)
}

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout(writeLayout(t, testLayout))
	require.Nil(t, err)
	require.Len(t, layout.Axes, 3)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeLayoutErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "[area]\nwidth = 1.0\ndepth = 2.0\n",
		"unknown edge": "[[axis]]\nedge = \"middle\"\n",
		"unknown mode": "[[axis]]\nedge = \"top\"\nmode = \"sometimes\"\n",
		"bad syntax":   "[area\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeLayout(strings.NewReader(content))
			require.Error(t, err)
		})
	}

	_, err := DecodeLayout(strings.NewReader("[area]\ndepth = 2.0\n"))
	require.ErrorIs(t, err, ErrUnknownKeys)
	require.ErrorContains(t, err, "area.depth")
}

func TestLayoutSpace(t *testing.T) {
	layout, err := DecodeLayout(strings.NewReader(testLayout))
	require.Nil(t, err)

	s, err := layout.Space(discardLogger())
	require.Nil(t, err)
	require.Equal(t, axisspace.Space{Top: 10, Bottom: 20, Left: 5, Right: 5}, *s)
}

func TestLayoutSpaceModes(t *testing.T) {
	layout := Layout{
		Axes: []Axis{
			{Edge: geom.EdgeLeft, Size: 10, Mode: ModeAdd},
			{Edge: geom.EdgeLeft, Size: 15, Mode: ModeAdd},
			{Edge: geom.EdgeTop, Size: 8, Mode: ModeAtLeast},
			{Edge: geom.EdgeTop, Size: 6, Mode: ModeAtLeast},
		},
		Minimum: &axisspace.Space{Left: 12, Right: 3},
	}

	s, err := layout.Space(discardLogger())
	require.Nil(t, err)
	require.Equal(t, axisspace.Space{Top: 8, Left: 25, Right: 3}, *s)
}

func TestLayoutSpaceMissingEdge(t *testing.T) {
	layout, err := DecodeLayout(strings.NewReader("[[axis]]\nname = \"lost\"\nsize = 3.0\n"))
	require.Nil(t, err)

	_, err = layout.Space(discardLogger())
	require.ErrorIs(t, err, axisspace.ErrInvalidArgument)
	require.ErrorContains(t, err, "lost")

	layout.Axes[0].Edge = geom.EdgeTop | geom.EdgeBottom
	_, err = layout.Space(discardLogger())
	require.ErrorIs(t, err, axisspace.ErrInvalidState)
}

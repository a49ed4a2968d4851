package geom_test

import (
	"testing"

	"deedles.dev/axisspace/geom"
	"github.com/stretchr/testify/require"
)

func TestEdgesString(t *testing.T) {
	tests := map[geom.Edges]string{
		geom.EdgeNone:                   "none",
		geom.EdgeTop:                    "top",
		geom.EdgeBottom:                 "bottom",
		geom.EdgeLeft:                   "left",
		geom.EdgeRight:                  "right",
		geom.EdgeTop | geom.EdgeLeft:    "top|left",
		geom.EdgeAll:                    "top|bottom|left|right",
		geom.EdgeRight | geom.Edges(32): "right|0x20",
	}

	for edges, want := range tests {
		require.Equal(t, want, edges.String())
	}
}

func TestParseEdges(t *testing.T) {
	tests := map[string]geom.Edges{
		"":                      geom.EdgeNone,
		"none":                  geom.EdgeNone,
		"top":                   geom.EdgeTop,
		" Bottom ":              geom.EdgeBottom,
		"LEFT":                  geom.EdgeLeft,
		"right":                 geom.EdgeRight,
		"top | right":           geom.EdgeTop | geom.EdgeRight,
		"left|left":             geom.EdgeLeft,
		"top|bottom|left|right": geom.EdgeAll,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := geom.ParseEdges(in)
			require.Nil(t, err)
			require.Equal(t, want, got)
		})
	}

	_, err := geom.ParseEdges("middle")
	require.ErrorIs(t, err, geom.ErrUnknownEdge)

	_, err = geom.ParseEdges("top|")
	require.ErrorIs(t, err, geom.ErrUnknownEdge)
}

func TestEdgesText(t *testing.T) {
	var e geom.Edges
	require.Nil(t, e.UnmarshalText([]byte("bottom")))
	require.Equal(t, geom.EdgeBottom, e)

	text, err := (geom.EdgeTop | geom.EdgeRight).MarshalText()
	require.Nil(t, err)
	require.Equal(t, "top|right", string(text))

	require.ErrorIs(t, e.UnmarshalText([]byte("up")), geom.ErrUnknownEdge)
	require.Equal(t, geom.EdgeBottom, e)
}

func TestEdgesSingle(t *testing.T) {
	require.False(t, geom.EdgeNone.Single())
	require.True(t, geom.EdgeTop.Single())
	require.True(t, geom.EdgeBottom.Single())
	require.True(t, geom.EdgeLeft.Single())
	require.True(t, geom.EdgeRight.Single())
	require.False(t, (geom.EdgeTop | geom.EdgeBottom).Single())
	require.False(t, geom.Edges(64).Single())

	require.True(t, geom.EdgeAll.Has(geom.EdgeTop|geom.EdgeLeft))
	require.False(t, geom.EdgeTop.Has(geom.EdgeTop|geom.EdgeLeft))
}

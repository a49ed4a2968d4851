package cli

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"deedles.dev/axisspace"
	"deedles.dev/axisspace/geom"
)

// tilers maps tile mode names to the geom tiling that implements
// them.
var tilers = map[string]func(n int, r geom.Rect[float64], cols int) iter.Seq[geom.Rect[float64]]{
	"grid": geom.Grid[float64],
	"stacked": func(n int, r geom.Rect[float64], _ int) iter.Seq[geom.Rect[float64]] {
		return geom.Stacked(n, r)
	},
	"columns": func(n int, r geom.Rect[float64], _ int) iter.Seq[geom.Rect[float64]] {
		return geom.Columns(n, r)
	},
}

func tileModes() []string {
	modes := make([]string, 0, len(tilers))
	for mode := range tilers {
		modes = append(modes, mode)
	}
	slices.Sort(modes)
	return modes
}

// Panel is one tile of the plot area, the data area left in it, and
// the bands its axes occupy.
type Panel struct {
	Tile     Rect   `json:"tile"`
	DataArea Rect   `json:"data_area"`
	Reserved []Band `json:"reserved"`
}

// TilePanels splits area into n panels using the named mode and
// reserves s inside each of them.
func TilePanels(s *axisspace.Space, area geom.Rect[float64], mode string, n, cols int) ([]Panel, error) {
	tiling, ok := tilers[mode]
	if !ok {
		return nil, fmt.Errorf("unknown tile mode %q (want one of %v)", mode, strings.Join(tileModes(), ", "))
	}
	if n <= 0 {
		return nil, fmt.Errorf("panel count must be positive, got %v", n)
	}

	tiles := make([]geom.Rect[float64], n)
	tiles = tiles[:geom.Tile(tiles, tiling(n, area, cols))]

	panels := make([]Panel, 0, len(tiles))
	var data geom.Rect[float64]
	for _, t := range tiles {
		s.ShrinkInto(t, &data)
		panels = append(panels, Panel{
			Tile:     newRect(t),
			DataArea: newRect(data),
			Reserved: reservedBands(s, t),
		})
	}
	return panels, nil
}

// tileCommand creates the tile command, which splits the plot area
// of a layout file into panels that each reserve the same axis space.
func (c *CLI) tileCommand() *cobra.Command {
	var (
		panels int
		cols   int
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "tile [layout.toml]",
		Short: "Split the plot area into panels and report each data area",
		Long: `Split the plot area of a layout file into panels.

The space computed from the layout file's axes is reserved inside every
panel. The data area of each panel is printed, followed by the band
each of its axes occupies.

Modes: ` + strings.Join(tileModes(), ", ") + `. The --cols flag only
applies to the grid mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTile(cmd.Context(), cmd.OutOrStdout(), args[0], mode, panels, cols)
		},
	}

	cmd.Flags().IntVarP(&panels, "panels", "n", 4, "number of panels")
	cmd.Flags().IntVar(&cols, "cols", 2, "maximum panels per row (grid mode)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "grid", "tiling mode: "+strings.Join(tileModes(), ", "))

	return cmd
}

func (c *CLI) runTile(ctx context.Context, w io.Writer, path, mode string, n, cols int) error {
	layout, err := LoadLayout(path)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := layout.Space(c.Logger)
	if err != nil {
		return fmt.Errorf("compute space: %w", err)
	}

	panels, err := TilePanels(s, layout.Area.Rect(), mode, n, cols)
	if err != nil {
		return err
	}
	c.Logger.Debug("tiled plot area", "mode", mode, "panels", len(panels))

	var buf strings.Builder
	buf.WriteString(StyleTitle.Render(fmt.Sprintf("Panels (%v)", mode)))
	buf.WriteByte('\n')
	writeField(&buf, "space", s.String())
	for i, p := range panels {
		writeField(&buf, fmt.Sprintf("panel %d", i+1), p.DataArea.String())
		for _, band := range p.Reserved {
			writeField(&buf, "  "+band.Edge.String(), band.Rect.String())
		}
	}

	_, err = io.WriteString(w, buf.String())
	return err
}

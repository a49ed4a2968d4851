package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// layoutCommand creates the layout command, which reports the data
// area and reserved bands for a layout file.
func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [layout.toml]",
		Short: "Report the data area and axis bands for a layout file",
		Long: `Report the data area and axis bands for a layout file.

Each [[axis]] in the file adds its size to the space reserved at its
edge, or with mode = "at-least" raises that edge to its size. The
[minimum] table, if present, is applied last. The command prints the
resulting space, the data area left inside the plot area, and the band
reserved at each edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, w io.Writer, path string, asJSON bool) error {
	layout, err := LoadLayout(path)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", path, err)
	}
	c.Logger.Debug("loaded layout", "path", path, "axes", len(layout.Axes))

	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := layout.Space(c.Logger)
	if err != nil {
		return fmt.Errorf("compute space: %w", err)
	}

	report := NewReport(s, layout.Area.Rect())
	if report.DataArea.Width < 0 || report.DataArea.Height < 0 {
		c.Logger.Warn("axes do not fit in the plot area", "space", s, "area", report.Area)
	}

	if asJSON {
		return report.WriteJSON(w)
	}
	return report.WriteText(w)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/geom"
)

// snapCommand creates the snap command.
func (c *CLI) snapCommand() *cobra.Command {
	var cellWidth, cellHeight float64

	cmd := &cobra.Command{
		Use:   "snap [x] [y]",
		Short: "Snap a pixel position to the nearest grid cell",
		Long: `Snap a pixel position to the nearest grid cell.

Each axis is rounded independently to the nearest multiple of the cell size.
The grid defaults to the configured one. Negative coordinates must follow --.`,
		Example: `  blockcanvas snap 47 13
  blockcanvas snap --cell-width 16 --cell-height 24 -- -47 13`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[1])
			if err != nil {
				return err
			}

			g := geom.Grid{CellWidth: c.Config.Grid.CellWidth, CellHeight: c.Config.Grid.CellHeight}
			if cmd.Flags().Changed("cell-width") {
				g.CellWidth = cellWidth
			}
			if cmd.Flags().Changed("cell-height") {
				g.CellHeight = cellHeight
			}

			sx, sy := g.Snap(x, y)
			col, row := g.ToCell(sx, sy)
			w := cmd.OutOrStdout()
			printKeyValue(w, "snapped", fmt.Sprintf("%s, %s", formatFloat(sx), formatFloat(sy)))
			printKeyValue(w, "cell", fmt.Sprintf("%d, %d", col, row))
			return nil
		},
	}

	cmd.Flags().Float64Var(&cellWidth, "cell-width", geom.DefaultCellSize, "grid cell width in pixels")
	cmd.Flags().Float64Var(&cellHeight, "cell-height", geom.DefaultCellSize, "grid cell height in pixels")
	return cmd
}

func parseCoord(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be a number, got %q", name, s)
	}
	if err := errors.ValidateFinite(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

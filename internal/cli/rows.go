package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/errors"
)

// rowsCommand creates the rows command for gap-aware row translation.
func (c *CLI) rowsCommand() *cobra.Command {
	var (
		block  string
		row    int
		pixelY float64
	)

	cmd := &cobra.Command{
		Use:   "rows [scene.json]",
		Short: "Translate between logical rows and pixel offsets",
		Long: `Translate between logical rows and pixel offsets inside a block.

Decoration gaps insert extra physical rows below a logical row. --row prints
where a logical row is drawn; --pixel-y prints which logical row a pixel
offset (relative to the block's top) falls on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasRow := cmd.Flags().Changed("row")
			hasPixel := cmd.Flags().Changed("pixel-y")
			if hasRow == hasPixel {
				return errors.New(errors.ErrCodeInvalidInput, "exactly one of --row or --pixel-y is required")
			}

			cv, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			b, err := selectBlock(cv, block)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if hasPixel {
				r, err := cv.PixelRowToLogicalRowIn(b.ID, pixelY)
				if err != nil {
					return err
				}
				printKeyValue(w, "pixel y", formatFloat(pixelY))
				printKeyValue(w, "row", strconv.Itoa(r))
				return nil
			}

			if row < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--row must not be negative")
			}
			y, err := cv.LogicalRowToPixel(b.ID, row)
			if err != nil {
				return err
			}
			printKeyValue(w, "row", strconv.Itoa(row))
			printKeyValue(w, "physical", strconv.Itoa(b.Gaps.LogicalToPhysical(row)))
			printKeyValue(w, "pixel y", formatFloat(y))
			return nil
		},
	}

	cmd.Flags().StringVar(&block, "block", "", "block to use (default: the scene's selection)")
	cmd.Flags().IntVar(&row, "row", 0, "logical row to translate to pixels")
	cmd.Flags().Float64Var(&pixelY, "pixel-y", 0, "pixel offset from the block's top to translate to a row")
	return cmd
}

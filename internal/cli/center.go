package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// centerCommand creates the center command.
func (c *CLI) centerCommand() *cobra.Command {
	var block string

	cmd := &cobra.Command{
		Use:   "center [scene.json]",
		Short: "Print the viewport origin that frames a block",
		Long: `Print the viewport origin that frames a block.

The block is centered horizontally. Vertically it is centered too, unless it
is taller than the viewport, in which case its top edge is pinned to the top
of the viewport.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			b, err := selectBlock(cv, block)
			if err != nil {
				return err
			}
			if err := cv.CenterOn(b.ID); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			bounds := b.Bounds(cv.Grid())
			target := destination(cv)
			printInfo(w, "centering on %s", StyleHighlight.Render(b.ID))
			printKeyValue(w, "bounds", fmt.Sprintf("%s, %s → %s, %s",
				formatFloat(bounds.Left), formatFloat(bounds.Top), formatFloat(bounds.Right), formatFloat(bounds.Bottom)))
			printKeyValue(w, "viewport", fmt.Sprintf("%s, %s", formatFloat(target.X), formatFloat(target.Y)))
			return nil
		},
	}

	cmd.Flags().StringVar(&block, "block", "", "block to center on (default: the scene's selection)")
	return cmd
}

// destination is the viewport origin once any centering animation ends.
func destination(cv *canvas.Canvas) viewport.Point {
	v := cv.Viewport()
	if t, ok := v.Target(); ok {
		return t
	}
	return v.Origin()
}

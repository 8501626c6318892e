package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/scene"
)

// navigateCommand creates the navigate command for a single directional move.
func (c *CLI) navigateCommand() *cobra.Command {
	var (
		direction string
		from      string
		explain   bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "navigate [scene.json]",
		Short: "Move the selection to the nearest block in a direction",
		Long: `Move the selection to the nearest block in a direction.

Candidates must lie fully past the selected block's edge. Vertical moves
prefer blocks that line up horizontally; horizontal moves only consider
blocks whose vertical span contains the cursor.

With --explain the scoring of every candidate is printed. With --output the
scene is written back with the new selection.`,
		Example: `  blockcanvas navigate scene.json -d down
  blockcanvas navigate scene.json -d right --from main --explain
  blockcanvas navigate scene.json -d j -o scene.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := nav.ParseDirection(direction)
			if err != nil {
				return err
			}
			return c.runNavigate(cmd, args[0], dir, from, explain, output)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "direction: left, right, up, down (or h, l, k, j)")
	cmd.Flags().StringVar(&from, "from", "", "block to start from (default: the scene's selection)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the score of every candidate")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the updated scene to this file")
	_ = cmd.MarkFlagRequired("direction")

	return cmd
}

func (c *CLI) runNavigate(cmd *cobra.Command, path string, dir nav.Direction, from string, explain bool, output string) error {
	cv, err := c.loadCanvas(path)
	if err != nil {
		return err
	}
	start, err := selectBlock(cv, from)
	if err != nil {
		return err
	}
	startID := start.ID

	w := cmd.OutOrStdout()
	if explain {
		ranked, err := cv.Rank(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Candidates %s of %s", dir, startID)))
		fmt.Fprintln(w, rankTable(ranked))
	}

	res := cv.Navigate(dir)
	printResult(w, startID, dir, res)
	if res.Moved {
		target := destination(cv)
		printKeyValue(w, "viewport", fmt.Sprintf("%s, %s", formatFloat(target.X), formatFloat(target.Y)))
	}

	if output != "" {
		if err := scene.WriteFile(output, scene.FromCanvas(cv)); err != nil {
			return err
		}
		printFile(w, output)
	}
	return nil
}

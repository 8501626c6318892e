package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/nav"
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		interval time.Duration
		steps    int
		pattern  string
	)

	cmd := &cobra.Command{
		Use:   "demo [scene.json]",
		Short: "Walk a scene by cycling through directions",
		Long: `Walk a scene by cycling through directions.

Every interval the demo tries the next direction of the pattern. When no
block lies in that direction it falls through to the following one. Each move
is logged. The demo stops after --steps moves (0 runs until interrupted).`,
		Example: `  blockcanvas demo scene.json
  blockcanvas demo scene.json --interval 200ms --steps 8 --pattern right,down`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := parsePattern(pattern)
			if err != nil {
				return err
			}
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}
			cv, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			return c.runDemo(cmd.Context(), cv, dirs, interval, steps)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "time between steps")
	cmd.Flags().IntVar(&steps, "steps", 0, "stop after this many steps (0: run until interrupted)")
	cmd.Flags().StringVar(&pattern, "pattern", "right,down,left,up", "comma-separated direction cycle")
	return cmd
}

func (c *CLI) runDemo(ctx context.Context, cv *canvas.Canvas, dirs []nav.Direction, interval time.Duration, steps int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	demo := canvas.NewDemo(cv, dirs...)

	n := 0
	err := demo.Run(ctx, interval, func(res nav.Result) bool {
		n++
		if res.Moved {
			target := destination(cv)
			logger.Info("step", "n", n, "block", res.ID, "score", res.Score, "viewport_x", target.X, "viewport_y", target.Y)
		} else {
			logger.Warn("step", "n", n, "block", res.ID, "moved", false)
		}
		return steps <= 0 || n < steps
	})
	if err != nil && err != context.Canceled {
		return err
	}
	prog.done(fmt.Sprintf("Demo finished after %d steps", n))
	return nil
}

func parsePattern(s string) ([]nav.Direction, error) {
	var dirs []nav.Direction
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := nav.ParseDirection(part)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

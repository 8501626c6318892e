// Package cli implements the blockcanvas command-line interface.
//
// # Commands
//
//   - navigate: move the selection of a scene in one direction
//   - center: print the viewport origin that frames a block
//   - rows: translate between logical rows and pixel offsets
//   - snap: snap a pixel position to the grid
//   - demo: walk a scene in a fixed direction cycle
//   - explore: interactive terminal canvas
//   - serve: HTTP API over a scene
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/blockcanvas/config.toml, or the
// file given with --config. Values in a scene file override them.
//
// # Logging
//
// All commands log to stderr through charmbracelet/log. --verbose (-v)
// switches to debug level, which also logs every navigation step.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/buildinfo"
	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/config"
	"github.com/matzehuels/blockcanvas/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "blockcanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Blockcanvas navigates block layouts on an infinite canvas",
		Long: `Blockcanvas lays out movable code blocks on a grid and moves a selection
between them: directional nearest-block search, row translation around
decoration gaps, viewport centering, and drag with grid snapping.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/blockcanvas/config.toml)")

	// Register all subcommands
	root.AddCommand(c.navigateCommand())
	root.AddCommand(c.centerCommand())
	root.AddCommand(c.rowsCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and applies the log level. --verbose wins
// over the configured level.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	level, _ := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("config loaded", "path", c.configPath, "level", level)
	return nil
}

// =============================================================================
// Scene Loading
// =============================================================================

// loadCanvas reads a scene file and builds its canvas on top of the
// configuration.
func (c *CLI) loadCanvas(path string) (*canvas.Canvas, error) {
	s, err := scene.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := append(c.Config.CanvasOptions(), canvas.WithLogger(c.Logger))
	cv, err := s.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	c.Logger.Debug("scene loaded", "path", path, "blocks", cv.Len())
	return cv, nil
}

// selectBlock selects id when given, otherwise keeps the scene's selection.
func selectBlock(cv *canvas.Canvas, id string) (*canvas.Block, error) {
	if id != "" {
		if err := cv.Select(id); err != nil {
			return nil, err
		}
	}
	b, ok := cv.Selected()
	if !ok {
		return nil, fmt.Errorf("scene has no blocks to select")
	}
	return b, nil
}

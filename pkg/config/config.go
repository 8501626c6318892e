package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config holds all user settings.
type Config struct {
	Navigation nav.Tuning `toml:"navigation"`
	Grid       Grid       `toml:"grid"`
	Viewport   Viewport   `toml:"viewport"`
	Text       Text       `toml:"text"`
	Log        Log        `toml:"log"`
}

// Grid is the cell size in pixels.
type Grid struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Viewport configures the visible window.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// AnimationMS is the centering animation length. 0 jumps immediately.
	AnimationMS int `toml:"animation_ms"`
	// DragButton is "primary", "secondary", "middle" or "none".
	DragButton string `toml:"drag_button"`
}

// Text configures block text metrics in pixels.
type Text struct {
	LineHeight   float64 `toml:"line_height"`
	HeaderHeight float64 `toml:"header_height"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Navigation: nav.DefaultTuning(),
		Grid:       Grid{CellWidth: geom.DefaultCellSize, CellHeight: geom.DefaultCellSize},
		Viewport: Viewport{
			Width:      viewport.DefaultWidth,
			Height:     viewport.DefaultHeight,
			DragButton: "primary",
		},
		Text: Text{LineHeight: canvas.DefaultLineHeight, HeaderHeight: canvas.DefaultHeaderHeight},
		Log:  Log{Level: "info"},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "blockcanvas", FileName), nil
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadDefault loads the file at [Path]. A missing file yields [Default].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Navigation.AlignmentWeight < 0 {
		return invalid("navigation.alignment_weight must not be negative")
	}
	if err := errors.ValidateFinite("navigation.alignment_weight", c.Navigation.AlignmentWeight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "navigation")
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		return invalid("grid cells must be positive, got %vx%v", c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("viewport size must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Viewport.AnimationMS < 0 {
		return invalid("viewport.animation_ms must not be negative")
	}
	if _, err := ParseButton(c.Viewport.DragButton); err != nil {
		return err
	}
	if c.Text.LineHeight <= 0 {
		return invalid("text.line_height must be positive")
	}
	if c.Text.HeaderHeight < 0 {
		return invalid("text.header_height must not be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return lvl, nil
}

// CanvasOptions converts the configuration into canvas options.
// The configuration must be valid.
func (c Config) CanvasOptions() []canvas.Option {
	button, _ := ParseButton(c.Viewport.DragButton)
	return []canvas.Option{
		canvas.WithGrid(geom.Grid{CellWidth: c.Grid.CellWidth, CellHeight: c.Grid.CellHeight}),
		canvas.WithLineHeight(c.Text.LineHeight),
		canvas.WithHeaderHeight(c.Text.HeaderHeight),
		canvas.WithTuning(c.Navigation),
		canvas.WithViewportSize(c.Viewport.Width, c.Viewport.Height),
		canvas.WithViewportOptions(
			viewport.WithDuration(time.Duration(c.Viewport.AnimationMS)*time.Millisecond),
			viewport.WithDragEnabled(button != 0),
			viewport.WithDragButtons(button),
		),
	}
}

// ParseButton maps a button name to its bitmask. "none" disables dragging.
func ParseButton(name string) (viewport.Buttons, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "primary", "left":
		return viewport.ButtonPrimary, nil
	case "secondary", "right":
		return viewport.ButtonSecondary, nil
	case "middle":
		return viewport.ButtonMiddle, nil
	case "none":
		return 0, nil
	}
	return 0, invalid("unknown drag button %q", name)
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

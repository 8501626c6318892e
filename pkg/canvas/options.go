package canvas

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// Default text metrics in pixels.
const (
	DefaultLineHeight   = 20.0
	DefaultHeaderHeight = 0.0
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithGrid sets the cell size. Grids with a non-positive cell size are
// ignored.
func WithGrid(g geom.Grid) Option {
	return func(c *Canvas) {
		if g.CellWidth > 0 && g.CellHeight > 0 {
			c.grid = g
		}
	}
}

// WithLineHeight sets the pixel height of one physical text row.
func WithLineHeight(h float64) Option {
	return func(c *Canvas) {
		if h > 0 {
			c.lineHeight = h
		}
	}
}

// WithHeaderHeight sets the pixel height above a block's first text row.
func WithHeaderHeight(h float64) Option {
	return func(c *Canvas) {
		if h >= 0 {
			c.headerHeight = h
		}
	}
}

// WithTuning sets the navigation heuristics.
func WithTuning(t nav.Tuning) Option {
	return func(c *Canvas) { c.tuning = t }
}

// WithAlignmentWeight sets only the navigation alignment weight.
func WithAlignmentWeight(w float64) Option {
	return func(c *Canvas) { c.tuning.AlignmentWeight = w }
}

// WithCursorGating sets only whether horizontal moves follow the cursor.
func WithCursorGating(enabled bool) Option {
	return func(c *Canvas) { c.tuning.CursorGating = enabled }
}

// WithViewportSize sets the size of the default viewport. Non-positive
// dimensions are ignored.
func WithViewportSize(width, height float64) Option {
	return func(c *Canvas) {
		if width > 0 {
			c.viewWidth = width
		}
		if height > 0 {
			c.viewHeight = height
		}
	}
}

// WithViewportOptions adds options for the default viewport. Later options
// override earlier ones.
func WithViewportOptions(opts ...viewport.Option) Option {
	return func(c *Canvas) {
		c.viewOpts = append(c.viewOpts, opts...)
	}
}

// WithViewport replaces the default viewport. The viewport's grid is set to
// the canvas grid. Size and viewport options are ignored.
func WithViewport(v *viewport.Viewport) Option {
	return func(c *Canvas) {
		if v != nil {
			c.view = v
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

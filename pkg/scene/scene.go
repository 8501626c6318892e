package scene

import (
	"strconv"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/gaps"
)

// Scene is the JSON form of a canvas.
type Scene struct {
	Grid         *Grid       `json:"grid,omitempty"`
	LineHeight   float64     `json:"line_height,omitempty"`
	HeaderHeight *float64    `json:"header_height,omitempty"`
	Viewport     *Viewport   `json:"viewport,omitempty"`
	Navigation   *Navigation `json:"navigation,omitempty"`
	Selected     string      `json:"selected,omitempty"`
	Blocks       []BlockSpec `json:"blocks"`
}

// Grid is the cell size in pixels.
type Grid struct {
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
}

// Navigation overrides navigation tuning. Absent fields keep the configured
// value.
type Navigation struct {
	AlignmentWeight *float64 `json:"alignment_weight,omitempty"`
	CursorGating    *bool    `json:"cursor_gating,omitempty"`
}

// Viewport is the visible window. Zero fields keep the configured value.
type Viewport struct {
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	AnimationMS *int    `json:"animation_ms,omitempty"`
}

// BlockSpec describes one block.
type BlockSpec struct {
	ID      string         `json:"id,omitempty"`
	Col     int            `json:"col"`
	Row     int            `json:"row"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	OffsetX float64        `json:"offset_x,omitempty"`
	OffsetY float64        `json:"offset_y,omitempty"`
	Lines   int            `json:"lines,omitempty"`
	Gaps    map[string]int `json:"gaps,omitempty"`
	Cursor  canvas.Cursor  `json:"cursor"`
}

// Validate checks the scene for values that cannot be built.
func (s *Scene) Validate() error {
	if s.Grid != nil {
		if s.Grid.CellWidth <= 0 || s.Grid.CellHeight <= 0 {
			return invalid("grid cells must be positive, got %vx%v", s.Grid.CellWidth, s.Grid.CellHeight)
		}
	}
	if s.LineHeight < 0 {
		return invalid("line_height must not be negative")
	}
	if s.HeaderHeight != nil && *s.HeaderHeight < 0 {
		return invalid("header_height must not be negative")
	}
	if v := s.Viewport; v != nil {
		if v.Width < 0 || v.Height < 0 {
			return invalid("viewport size must not be negative")
		}
		if v.AnimationMS != nil && *v.AnimationMS < 0 {
			return invalid("viewport animation_ms must not be negative")
		}
	}

	if n := s.Navigation; n != nil && n.AlignmentWeight != nil {
		w := *n.AlignmentWeight
		if err := errors.ValidateFinite("navigation.alignment_weight", w); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "navigation")
		}
		if w < 0 {
			return invalid("navigation.alignment_weight must not be negative, got %v", w)
		}
	}

	seen := make(map[string]bool, len(s.Blocks))
	for i, b := range s.Blocks {
		if err := b.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "block %d", i)
		}
		if b.ID == "" {
			continue
		}
		if seen[b.ID] {
			return invalid("duplicate block id %q", b.ID)
		}
		seen[b.ID] = true
	}

	if s.Selected != "" && !seen[s.Selected] {
		return invalid("selected block %q is not in the scene", s.Selected)
	}
	return nil
}

func (b BlockSpec) validate() error {
	if b.ID != "" {
		if err := errors.ValidateBlockID(b.ID); err != nil {
			return err
		}
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"width", b.Width},
		{"height", b.Height},
		{"offset_x", b.OffsetX},
		{"offset_y", b.OffsetY},
	}
	for _, f := range fields {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if b.Lines < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "lines must not be negative")
	}
	_, err := parseGaps(b.Gaps)
	return err
}

// parseGaps converts JSON gap keys to rows.
func parseGaps(in map[string]int) (map[int]int, error) {
	out := make(map[int]int, len(in))
	for key, size := range in {
		row, err := strconv.Atoi(key)
		if err != nil || row < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "gap key %q is not a row number", key)
		}
		if _, dup := out[row]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "gap row %d is listed twice", row)
		}
		if size < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "gap %d has negative size %d", row, size)
		}
		out[row] = min(size, gaps.MaxSize)
	}
	return out, nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidScene, format, args...)
}

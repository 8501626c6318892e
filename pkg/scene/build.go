package scene

import (
	"strconv"
	"time"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/gaps"
	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// Build creates a canvas from the scene. The given options are applied
// first, so values present in the scene override them.
func (s *Scene) Build(opts ...canvas.Option) (*canvas.Canvas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	all := append([]canvas.Option{}, opts...)
	all = append(all, s.options()...)
	c := canvas.New(all...)

	for i, spec := range s.Blocks {
		rows, err := parseGaps(spec.Gaps)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "block %d", i)
		}
		_, err = c.Add(canvas.Block{
			ID:      spec.ID,
			Col:     spec.Col,
			Row:     spec.Row,
			Width:   spec.Width,
			Height:  spec.Height,
			OffsetX: spec.OffsetX,
			OffsetY: spec.OffsetY,
			Lines:   spec.Lines,
			Gaps:    gaps.FromMap(rows),
			Cursor:  spec.Cursor,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "block %d", i)
		}
	}

	if s.Selected != "" {
		if err := c.Select(s.Selected); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *Scene) options() []canvas.Option {
	var opts []canvas.Option
	if s.Grid != nil {
		opts = append(opts, canvas.WithGrid(geom.Grid{CellWidth: s.Grid.CellWidth, CellHeight: s.Grid.CellHeight}))
	}
	if s.LineHeight > 0 {
		opts = append(opts, canvas.WithLineHeight(s.LineHeight))
	}
	if s.HeaderHeight != nil {
		opts = append(opts, canvas.WithHeaderHeight(*s.HeaderHeight))
	}
	if v := s.Viewport; v != nil {
		opts = append(opts, canvas.WithViewportSize(v.Width, v.Height))
		if v.AnimationMS != nil {
			d := time.Duration(*v.AnimationMS) * time.Millisecond
			opts = append(opts, canvas.WithViewportOptions(viewport.WithDuration(d)))
		}
	}
	if n := s.Navigation; n != nil {
		if n.AlignmentWeight != nil {
			opts = append(opts, canvas.WithAlignmentWeight(*n.AlignmentWeight))
		}
		if n.CursorGating != nil {
			opts = append(opts, canvas.WithCursorGating(*n.CursorGating))
		}
	}
	return opts
}

// FromCanvas captures the current state of c as a scene.
func FromCanvas(c *canvas.Canvas) *Scene {
	g := c.Grid()
	header := c.HeaderHeight()
	tuning := c.Tuning()
	v := c.Viewport()
	ms := int(v.Duration / time.Millisecond)

	s := &Scene{
		Grid:         &Grid{CellWidth: g.CellWidth, CellHeight: g.CellHeight},
		LineHeight:   c.LineHeight(),
		HeaderHeight: &header,
		Viewport:     &Viewport{Width: v.Width, Height: v.Height, AnimationMS: &ms},
		Navigation:   &Navigation{AlignmentWeight: &tuning.AlignmentWeight, CursorGating: &tuning.CursorGating},
		Blocks:       make([]BlockSpec, 0, c.Len()),
	}
	if sel, ok := c.Selected(); ok {
		s.Selected = sel.ID
	}

	for _, b := range c.Blocks() {
		spec := BlockSpec{
			ID:      b.ID,
			Col:     b.Col,
			Row:     b.Row,
			Width:   b.Width,
			Height:  b.Height,
			OffsetX: b.OffsetX,
			OffsetY: b.OffsetY,
			Lines:   b.Lines,
			Cursor:  b.Cursor,
		}
		if b.Gaps.Len() > 0 {
			spec.Gaps = make(map[string]int, b.Gaps.Len())
			for _, gap := range b.Gaps.Gaps() {
				spec.Gaps[strconv.Itoa(gap.Row)] = gap.Size
			}
		}
		s.Blocks = append(s.Blocks, spec)
	}
	return s
}

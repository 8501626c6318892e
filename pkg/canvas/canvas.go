package canvas

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/gaps"
	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/observability"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// Canvas is an insertion-ordered collection of blocks with a selection and a
// viewport.
type Canvas struct {
	grid         geom.Grid
	lineHeight   float64
	headerHeight float64
	tuning       nav.Tuning
	view         *viewport.Viewport
	viewWidth    float64
	viewHeight   float64
	viewOpts     []viewport.Option
	logger       *log.Logger

	blocks   []*Block
	index    map[string]int
	selected string
}

// New creates an empty canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		grid:         geom.DefaultGrid(),
		lineHeight:   DefaultLineHeight,
		headerHeight: DefaultHeaderHeight,
		tuning:       nav.DefaultTuning(),
		viewWidth:    viewport.DefaultWidth,
		viewHeight:   viewport.DefaultHeight,
		logger:       log.New(io.Discard),
		index:        make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.view == nil {
		c.view = viewport.New(c.viewWidth, c.viewHeight, c.grid, c.viewOpts...)
	}
	c.view.Grid = c.grid
	return c
}

// Grid returns the canvas grid.
func (c *Canvas) Grid() geom.Grid { return c.grid }

// LineHeight returns the pixel height of one physical text row.
func (c *Canvas) LineHeight() float64 { return c.lineHeight }

// HeaderHeight returns the pixel height above a block's first text row.
func (c *Canvas) HeaderHeight() float64 { return c.headerHeight }

// Tuning returns the navigation heuristics.
func (c *Canvas) Tuning() nav.Tuning { return c.tuning }

// Viewport returns the canvas viewport.
func (c *Canvas) Viewport() *viewport.Viewport { return c.view }

// Len returns the number of blocks.
func (c *Canvas) Len() int { return len(c.blocks) }

// Add stores a copy of b and returns the stored block. An empty ID is
// replaced with a generated one. The first block added becomes the
// selection.
func (c *Canvas) Add(b Block) (*Block, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := errors.ValidateBlockID(b.ID); err != nil {
		return nil, err
	}
	if _, ok := c.index[b.ID]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateBlock, "block %q already exists", b.ID)
	}

	stored := b.clone()
	stored.Cursor.Row = stored.clampRow(stored.Cursor.Row)
	c.index[stored.ID] = len(c.blocks)
	c.blocks = append(c.blocks, stored)
	if c.selected == "" {
		c.selected = stored.ID
	}

	observability.Canvas().OnBlockAdded(stored.ID)
	return stored, nil
}

// Remove deletes a block. Removing the selected block clears the selection.
func (c *Canvas) Remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return notFound(id)
	}
	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.blocks); j++ {
		c.index[c.blocks[j].ID] = j
	}
	if c.selected == id {
		c.selected = ""
	}

	observability.Canvas().OnBlockRemoved(id)
	return nil
}

// Block returns the stored block with the given ID.
func (c *Canvas) Block(id string) (*Block, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.blocks[i], true
}

// Blocks returns the blocks in insertion order.
func (c *Canvas) Blocks() []*Block {
	out := make([]*Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Select makes id the selected block.
func (c *Canvas) Select(id string) error {
	if _, ok := c.index[id]; !ok {
		return notFound(id)
	}
	c.setSelected(id)
	return nil
}

// setSelected selects a block known to be stored.
func (c *Canvas) setSelected(id string) {
	c.selected = id
	observability.Canvas().OnSelect(id)
}

// Selected returns the selected block.
func (c *Canvas) Selected() (*Block, bool) {
	if c.selected == "" {
		return nil, false
	}
	return c.Block(c.selected)
}

// Bounds returns the current visual rectangle of a block.
func (c *Canvas) Bounds(id string) (geom.Bounds, error) {
	b, ok := c.Block(id)
	if !ok {
		return geom.Bounds{}, notFound(id)
	}
	return b.Bounds(c.grid), nil
}

// CursorY returns the y of a block's cursor relative to the block's top: the
// middle of the cursor's physical row, below the header.
func (c *Canvas) CursorY(id string) (float64, error) {
	b, ok := c.Block(id)
	if !ok {
		return 0, notFound(id)
	}
	return c.cursorY(b), nil
}

// SetCursor moves a block's cursor. The row is clamped to the block's lines.
func (c *Canvas) SetCursor(id string, row, col int) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	b.Cursor = Cursor{Row: b.clampRow(row), Col: max(col, 0)}
	return nil
}

// SetGap sets the decoration gap below a logical row of a block.
func (c *Canvas) SetGap(id string, row, size int) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	if b.Gaps == nil {
		b.Gaps = gaps.New()
	}
	b.Gaps.Set(row, size)
	return nil
}

// ClearGaps removes every gap from a block.
func (c *Canvas) ClearGaps(id string) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	b.Gaps = gaps.New()
	return nil
}

// Candidates returns every block except the selected one as navigation
// candidates, in insertion order.
func (c *Canvas) Candidates() []nav.Candidate {
	out := make([]nav.Candidate, 0, len(c.blocks))
	for _, b := range c.blocks {
		if b.ID == c.selected {
			continue
		}
		out = append(out, nav.Candidate{ID: b.ID, Bounds: b.Bounds(c.grid)})
	}
	return out
}

// Selection returns the navigation start point for the selected block.
func (c *Canvas) Selection() (nav.Selection, bool) {
	b, ok := c.Selected()
	if !ok {
		return nav.Selection{}, false
	}
	return nav.Selection{ID: b.ID, Bounds: b.Bounds(c.grid), CursorY: c.cursorY(b)}, true
}

// Navigate moves the selection to the nearest block in dir and centers the
// viewport on it. The result has Moved == false, and nothing changes, when no
// block qualifies or nothing is selected.
func (c *Canvas) Navigate(dir nav.Direction) nav.Result {
	sel, ok := c.Selection()
	if !ok {
		c.logger.Debug("navigate without selection", "direction", dir)
		return nav.Result{}
	}

	res := nav.Find(c.Candidates(), sel, dir, nav.WithTuning(c.tuning))
	observability.Canvas().OnNavigate(sel.ID, res.ID, dir.String(), res.Moved)
	if !res.Moved {
		c.logger.Debug("no block in direction", "from", sel.ID, "direction", dir)
		return res
	}

	c.selected = res.ID
	observability.Canvas().OnSelect(res.ID)
	c.center(res.ID, res.Bounds)
	c.logger.Debug("navigated", "from", sel.ID, "to", res.ID, "direction", dir, "score", res.Score)
	return res
}

// Rank returns the scoring breakdown for every candidate in dir.
func (c *Canvas) Rank(dir nav.Direction) ([]nav.Scored, error) {
	sel, ok := c.Selection()
	if !ok {
		return nil, errors.New(errors.ErrCodeNoSelection, "no block selected")
	}
	return nav.Rank(c.Candidates(), sel, dir, nav.WithTuning(c.tuning)), nil
}

// PixelRowToLogicalRow maps a pixel y, relative to the selected block's top,
// to a logical row of that block. Without a selection it returns 0.
func (c *Canvas) PixelRowToLogicalRow(pixelY float64) int {
	b, ok := c.Selected()
	if !ok {
		return 0
	}
	return c.pixelRow(b, pixelY)
}

// PixelRowToLogicalRowIn is PixelRowToLogicalRow for a named block.
func (c *Canvas) PixelRowToLogicalRowIn(id string, pixelY float64) (int, error) {
	b, ok := c.Block(id)
	if !ok {
		return 0, notFound(id)
	}
	return c.pixelRow(b, pixelY), nil
}

// LogicalRowToPixel returns the y of a logical row's top edge relative to the
// block's top.
func (c *Canvas) LogicalRowToPixel(id string, row int) (float64, error) {
	b, ok := c.Block(id)
	if !ok {
		return 0, notFound(id)
	}
	return c.headerHeight + float64(b.Gaps.LogicalToPhysical(max(row, 0)))*c.lineHeight, nil
}

// HitTest returns the block under a canvas point. Blocks added later are on
// top.
func (c *Canvas) HitTest(x, y float64) (*Block, bool) {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].Bounds(c.grid).Contains(x, y) {
			return c.blocks[i], true
		}
	}
	return nil, false
}

// Click selects the block under a canvas point and places its cursor on the
// clicked row. It reports false when no block is hit.
func (c *Canvas) Click(x, y float64) (*Block, bool) {
	b, ok := c.HitTest(x, y)
	if !ok {
		return nil, false
	}
	if c.selected != b.ID {
		c.selected = b.ID
		observability.Canvas().OnSelect(b.ID)
	}
	row := c.pixelRow(b, y-b.Bounds(c.grid).Top)
	b.Cursor = Cursor{Row: row, Col: b.Cursor.Col}
	return b, true
}

// CenterOn scrolls the viewport to frame a block.
func (c *Canvas) CenterOn(id string) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	c.center(id, b.Bounds(c.grid))
	return nil
}

func (c *Canvas) center(id string, b geom.Bounds) {
	target := c.view.CenterOn(b)
	observability.Canvas().OnCenter(id, target.X, target.Y)
}

func (c *Canvas) cursorY(b *Block) float64 {
	physical := b.Gaps.LogicalToPhysical(b.Cursor.Row)
	return c.headerHeight + (float64(physical)+0.5)*c.lineHeight
}

func (c *Canvas) pixelRow(b *Block, pixelY float64) int {
	return b.clampRow(b.Gaps.PixelRowToLogicalRow(pixelY-c.headerHeight, c.lineHeight))
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
}

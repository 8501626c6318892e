package canvas

import "github.com/matzehuels/blockcanvas/pkg/observability"

// DragBlock shifts a block visually by (dx, dy) without changing its cell.
// Offsets accumulate until DropBlock.
func (c *Canvas) DragBlock(id string, dx, dy float64) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	b.OffsetX += dx
	b.OffsetY += dy
	return nil
}

// DropBlock ends a drag: the block's visual position is snapped to the
// nearest grid cell on each axis, stored as its new cell, and the offsets are
// cleared.
func (c *Canvas) DropBlock(id string) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	p := b.Placement(c.grid).Settled()
	x, y := c.grid.Snap(p.X, p.Y)
	b.Col, b.Row = c.grid.ToCell(x, y)
	b.OffsetX, b.OffsetY = 0, 0

	observability.Canvas().OnSnap(id, x, y)
	c.logger.Debug("dropped block", "id", id, "col", b.Col, "row", b.Row)
	return nil
}

// MoveBlock places a block at a grid cell and clears its offsets.
func (c *Canvas) MoveBlock(id string, col, row int) error {
	b, ok := c.Block(id)
	if !ok {
		return notFound(id)
	}
	b.Col, b.Row = col, row
	b.OffsetX, b.OffsetY = 0, 0
	return nil
}

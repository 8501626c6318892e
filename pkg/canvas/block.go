package canvas

import (
	"github.com/matzehuels/blockcanvas/pkg/gaps"
	"github.com/matzehuels/blockcanvas/pkg/geom"
)

// Cursor is a logical text position inside a block.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Block is a movable text container on the canvas.
type Block struct {
	ID string

	// Col and Row are the grid cell of the block's top-left corner.
	Col, Row int

	// Width and Height are the block's pixel size.
	Width, Height float64

	// OffsetX and OffsetY shift the block visually without moving its cell.
	OffsetX, OffsetY float64

	// Lines is the number of logical text lines. Zero means unknown, which
	// disables row clamping.
	Lines int

	Gaps   *gaps.Map
	Cursor Cursor
}

// Placement returns the block's raw geometry on grid g.
func (b *Block) Placement(g geom.Grid) geom.Placement {
	p := g.Place(b.Col, b.Row, b.Width, b.Height)
	p.OffsetX = b.OffsetX
	p.OffsetY = b.OffsetY
	return p
}

// Bounds returns the block's visual rectangle on grid g.
func (b *Block) Bounds(g geom.Grid) geom.Bounds {
	return b.Placement(g).Bounds()
}

// clampRow limits row to the block's lines when the line count is known.
func (b *Block) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if b.Lines > 0 && row >= b.Lines {
		return b.Lines - 1
	}
	return row
}

func (b *Block) clone() *Block {
	c := *b
	c.Gaps = b.Gaps.Clone()
	return &c
}

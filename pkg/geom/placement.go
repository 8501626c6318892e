package geom

// Placement is the raw geometry of a block: its pixel anchor, size, and
// transient visual offsets.
type Placement struct {
	X, Y             float64
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Bounds derives the block's visual rectangle from anchor, size and offsets.
func (p Placement) Bounds() Bounds {
	left := p.X + p.OffsetX
	top := p.Y + p.OffsetY
	return Bounds{
		Left:   left,
		Top:    top,
		Right:  left + p.Width,
		Bottom: top + p.Height,
	}
}

// Settled returns the placement with offsets folded into the anchor.
func (p Placement) Settled() Placement {
	return Placement{
		X:      p.X + p.OffsetX,
		Y:      p.Y + p.OffsetY,
		Width:  p.Width,
		Height: p.Height,
	}
}

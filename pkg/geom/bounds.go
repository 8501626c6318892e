package geom

// Bounds is an axis-aligned rectangle in canvas pixels.
// Top is above Bottom on screen, so Top <= Bottom for non-degenerate blocks.
type Bounds struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center point of the bounds.
func (b Bounds) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point of the bounds.
func (b Bounds) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Contains reports whether the point lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && b.SpansY(y)
}

// SpansY reports whether y lies within [Top, Bottom].
func (b Bounds) SpansY(y float64) bool {
	return y >= b.Top && y <= b.Bottom
}

// SpansX reports whether x lies within [Left, Right].
func (b Bounds) SpansX(x float64) bool {
	return x >= b.Left && x <= b.Right
}

// Intersects reports whether two bounds overlap with a positive area.
// Bounds that only share an edge do not intersect.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Left < o.Right && o.Left < b.Right &&
		b.Top < o.Bottom && o.Top < b.Bottom
}

// Translate returns the bounds shifted by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Rect builds bounds from an origin and a size.
func Rect(x, y, w, h float64) Bounds {
	return Bounds{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

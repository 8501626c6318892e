package geom

import "math"

// DefaultCellSize is the cell edge length used when no grid is configured.
const DefaultCellSize = 20.0

// Grid converts between grid cells and canvas pixels.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultGrid returns a square grid of DefaultCellSize.
func DefaultGrid() Grid {
	return Grid{CellWidth: DefaultCellSize, CellHeight: DefaultCellSize}
}

// ToPixel returns the pixel anchor of a cell.
func (g Grid) ToPixel(col, row int) (x, y float64) {
	return float64(col) * g.CellWidth, float64(row) * g.CellHeight
}

// ToCell returns the cell nearest to a pixel position.
// A non-positive cell size maps that axis to cell 0.
func (g Grid) ToCell(x, y float64) (col, row int) {
	return toCell(x, g.CellWidth), toCell(y, g.CellHeight)
}

// Snap rounds each axis independently to the nearest cell multiple.
func (g Grid) Snap(x, y float64) (float64, float64) {
	return SnapValue(x, g.CellWidth), SnapValue(y, g.CellHeight)
}

// Place builds a placement anchored at a cell with the given pixel size.
func (g Grid) Place(col, row int, width, height float64) Placement {
	x, y := g.ToPixel(col, row)
	return Placement{X: x, Y: y, Width: width, Height: height}
}

// SnapValue returns round(v / cell) * cell.
// A non-positive cell size leaves v unchanged.
func SnapValue(v, cell float64) float64 {
	if cell <= 0 {
		return v
	}
	return math.Round(v/cell) * cell
}

func toCell(v, cell float64) int {
	if cell <= 0 {
		return 0
	}
	return int(math.Round(v / cell))
}

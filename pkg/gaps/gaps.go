package gaps

import (
	"math"
	"sort"
)

// MaxSize is the largest gap size a Map stores.
const MaxSize = math.MaxInt32

// Gap inserts Size physical rows below logical row Row.
type Gap struct {
	Row  int `json:"row"`
	Size int `json:"size"`
}

// Map is an ordered set of gaps keyed by logical row.
// The zero value and a nil *Map are both valid empty maps.
type Map struct {
	gaps []Gap // ascending by Row, rows unique
}

// New builds a map from gaps in any order.
// When a row appears more than once the last size wins.
func New(gs ...Gap) *Map {
	m := &Map{}
	for _, g := range gs {
		m.Set(g.Row, g.Size)
	}
	return m
}

// FromMap builds a map from a row -> size association.
// The association is sorted by row before use.
func FromMap(sizes map[int]int) *Map {
	rows := make([]int, 0, len(sizes))
	for row := range sizes {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	m := &Map{gaps: make([]Gap, 0, len(rows))}
	for _, row := range rows {
		m.gaps = append(m.gaps, Gap{Row: row, Size: clampSize(sizes[row])})
	}
	return m
}

// Set inserts or replaces the gap at row, keeping ascending order.
// Sizes are clamped to [0, MaxSize].
func (m *Map) Set(row, size int) {
	size = clampSize(size)
	i := m.search(row)
	if i < len(m.gaps) && m.gaps[i].Row == row {
		m.gaps[i].Size = size
		return
	}
	m.gaps = append(m.gaps, Gap{})
	copy(m.gaps[i+1:], m.gaps[i:])
	m.gaps[i] = Gap{Row: row, Size: size}
}

// Delete removes the gap at row, if any.
func (m *Map) Delete(row int) {
	i := m.search(row)
	if i < len(m.gaps) && m.gaps[i].Row == row {
		m.gaps = append(m.gaps[:i], m.gaps[i+1:]...)
	}
}

// Size returns the gap size at row, or 0.
func (m *Map) Size(row int) int {
	if m == nil {
		return 0
	}
	i := m.search(row)
	if i < len(m.gaps) && m.gaps[i].Row == row {
		return m.gaps[i].Size
	}
	return 0
}

// Len returns the number of gaps.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.gaps)
}

// Gaps returns a copy of the gaps in ascending row order.
func (m *Map) Gaps() []Gap {
	if m == nil {
		return nil
	}
	out := make([]Gap, len(m.gaps))
	copy(out, m.gaps)
	return out
}

// Total returns the sum of all gap sizes.
func (m *Map) Total() int {
	if m == nil {
		return 0
	}
	var sum int
	for _, g := range m.gaps {
		sum += g.Size
	}
	return sum
}

// Clone returns an independent copy. Cloning nil yields an empty map.
func (m *Map) Clone() *Map {
	return &Map{gaps: m.Gaps()}
}

// Sizes returns the gaps as a row -> size association.
func (m *Map) Sizes() map[int]int {
	out := make(map[int]int, m.Len())
	if m == nil {
		return out
	}
	for _, g := range m.gaps {
		out[g.Row] = g.Size
	}
	return out
}

// LogicalToPhysical returns the rendered row of logical row.
// Every gap keyed strictly below row pushes it down by its size. The result
// saturates at math.MaxInt.
func (m *Map) LogicalToPhysical(row int) int {
	if m == nil {
		return row
	}
	physical := row
	for _, g := range m.gaps {
		if g.Row >= row {
			break
		}
		if physical > math.MaxInt-g.Size {
			return math.MaxInt
		}
		physical += g.Size
	}
	return physical
}

// PhysicalToLogical returns the logical row for a rendered row. Gaps are
// visited in ascending order and crossed while physical is strictly past
// key + offset. The result is never negative.
func (m *Map) PhysicalToLogical(physical int) int {
	offset := 0
	if m != nil {
		for _, g := range m.gaps {
			if physical <= g.Row+offset {
				break
			}
			offset += g.Size
		}
	}
	return max(physical-offset, 0)
}

// Height returns the number of physical rows occupied by lines logical
// rows, including gaps below any of them.
func (m *Map) Height(lines int) int {
	if lines <= 0 {
		return 0
	}
	return m.LogicalToPhysical(lines)
}

// PixelRowToLogicalRow converts a pixel offset from the top of the text area
// into a logical row. Pixels are binned into physical rows of lineHeight
// before translation. A non-positive lineHeight yields row 0.
func (m *Map) PixelRowToLogicalRow(pixelY, lineHeight float64) int {
	if lineHeight <= 0 || math.IsNaN(pixelY) {
		return 0
	}
	physical := math.Floor(pixelY / lineHeight)
	if physical < 0 {
		return 0
	}
	if physical > math.MaxInt32 {
		physical = math.MaxInt32
	}
	return m.PhysicalToLogical(int(physical))
}

func (m *Map) search(row int) int {
	return sort.Search(len(m.gaps), func(i int) bool { return m.gaps[i].Row >= row })
}

func clampSize(size int) int {
	return min(max(size, 0), MaxSize)
}

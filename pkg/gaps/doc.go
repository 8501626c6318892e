// Package gaps translates between logical text rows and physical rendered rows.
//
// # Overview
//
// Rendering splices extra blank rows into a block to make room for
// decorations (inline results, diagnostics, scopes). A gap says "after
// logical row K, insert N physical rows". Once gaps are present, the row a
// line is drawn on diverges from its index in the source:
//
//	logical   physical
//	0  foo    0  foo
//	          1  ░░ decoration (gap at 0, size 2)
//	          2  ░░
//	1  bar    3  bar
//
// # Ordering
//
// Reverse translation accumulates offsets gap by gap, so it depends on
// visiting gaps in ascending row order. [Map] therefore stores gaps as a
// sorted sequence of (row, size) pairs rather than a hash map, and keeps the
// order on every insertion.
//
// # Boundary Rule
//
// A gap at row K is crossed only when the probe is strictly greater than K
// (plus the offset accumulated so far). That rule decides whether a gap
// belongs to the row above or below it, and is what makes the round trip
// exact:
//
//	m.PhysicalToLogical(m.LogicalToPhysical(r)) == r   for every r >= 0
//
// Physical rows inside a gap are shifted back by the whole gap, so they land
// on an earlier line. Reverse translation clamps to 0 instead of returning
// negative rows.
package gaps

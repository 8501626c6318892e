// Package geom maps grid cells to pixel coordinates and derives block bounds.
//
// # Overview
//
// Blocks live on an infinite canvas. Their source of truth is a grid cell
// (column, row); pixel anchors are derived as cell * cell size. On top of the
// anchor, a block carries transient offsets (drag, animation) that shift its
// visual position without changing its cell.
//
// The screen coordinate system is used throughout: y grows downward, so a
// block's Top is numerically smaller than its Bottom.
//
// # Bounds
//
// [Placement.Bounds] derives the axis-aligned rectangle:
//
//	left   = X + OffsetX
//	top    = Y + OffsetY
//	right  = left + Width
//	bottom = top + Height
//
// Bounds are plain values. Callers recompute them after every geometry
// mutation instead of caching them.
//
// # Snapping
//
// [Grid.Snap] rounds each axis independently to the nearest multiple of the
// cell size. Snapping an aligned coordinate returns it unchanged.
//
// Degenerate input (zero or negative sizes, negative coordinates) is
// accepted everywhere; nothing in this package returns an error.
package geom

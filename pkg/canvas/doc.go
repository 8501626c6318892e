// Package canvas holds the blocks of an editor canvas and answers spatial
// queries over them.
//
// # Overview
//
// A [Canvas] owns an insertion-ordered set of [Block] values, the current
// selection, and a [viewport.Viewport]. It exposes the operations the rest of
// the editor calls:
//
//   - [Canvas.Navigate]: move the selection to the nearest block in a
//     direction and scroll it into view
//   - [Canvas.PixelRowToLogicalRow]: map a click inside the selected block to
//     a logical text row, accounting for decoration gaps
//   - [Canvas.CenterOn]: scroll a block into view
//
// Bounds are derived from each block's grid cell, size and offsets on every
// query. Nothing is cached, so a query issued after a mutation always sees the
// new geometry.
//
// # Ordering
//
// Navigation ties resolve to the block added first. [Canvas.Blocks] returns
// blocks in that same order.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. It is driven from a single event
// loop; callers that share one across goroutines must serialize access.
package canvas

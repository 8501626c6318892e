// Package nav finds the nearest block in a direction for keyboard navigation.
//
// # Algorithm
//
// [Find] runs three steps over the candidate blocks:
//
//  1. Filter: keep blocks whose near edge has cleared the selected block's far
//     edge along the movement axis. Moving down, a candidate qualifies when
//     candidate.Top >= selected.Bottom. Partially overlapping neighbours are
//     excluded even when they extend further on the other axis.
//  2. Score: vertical moves use primary + AlignmentWeight * secondary, where
//     primary is the edge-to-edge gap and secondary the distance between
//     horizontal centers. Horizontal moves are gated on the cursor: only
//     blocks whose vertical span contains the selected block's absolute
//     cursor y qualify, and they score by primary distance alone.
//  3. Select: the lowest score wins. Equal scores go to the candidate that
//     appears first in the input slice.
//
// # No Movement
//
// When nothing qualifies, [Find] returns a [Result] with Moved == false that
// carries the selection's own ID and bounds. Callers branch on Moved rather
// than comparing identities.
//
// # Tuning
//
// The alignment weight and cursor gating are heuristics that shape how
// navigation feels. They are exposed as [Tuning] so they can be configured
// and regression-tested on their own:
//
//	r := nav.Find(blocks, sel, nav.Down, nav.WithAlignmentWeight(3))
package nav

// Package viewport frames blocks on the canvas and pans it with the pointer.
//
// # Centering
//
// [CenterTarget] computes the origin that frames a block:
//
//	x = blockCenterX - width/2
//	y = min(blockTop, blockCenterY - height/2)
//
// Horizontally the block is always centered. Vertically it is centered unless
// that would push its top edge above the viewport, in which case the top is
// pinned to the viewport's top edge. Blocks grow downward, so the header stays
// in view.
//
// [Viewport.CenterOn] applies the target immediately, or animates towards it
// when Duration is set. Call [Viewport.Tick] from the frame loop to advance
// the animation.
//
// # Dragging
//
// While one of DragButtons is held and dragging is enabled,
// [Viewport.PointerMove] pans the origin by the raw pointer movement (1:1, no
// easing) and cancels any running animation. [Viewport.PointerUp] ends the
// drag and snaps the origin to the grid.
package viewport

// Package scene reads and writes canvas scenes as JSON.
//
// # Overview
//
// A scene is a complete description of a canvas: grid, text metrics,
// viewport, navigation tuning, the block list and the selected block. The
// CLI and the HTTP server load scenes to build a [canvas.Canvas], and the CLI
// writes them back after a navigation.
//
// # JSON Format
//
//	{
//	  "grid": {"cell_width": 20, "cell_height": 20},
//	  "line_height": 20,
//	  "header_height": 24,
//	  "viewport": {"width": 1280, "height": 720, "animation_ms": 200},
//	  "navigation": {"alignment_weight": 2, "cursor_gating": true},
//	  "selected": "main",
//	  "blocks": [
//	    {"id": "main", "col": 0, "row": 0, "width": 320, "height": 200,
//	     "lines": 8, "gaps": {"2": 3}, "cursor": {"row": 4, "col": 0}}
//	  ]
//	}
//
// Every top-level field except "blocks" is optional. Absent values fall back
// to the options passed to [Scene.Build], then to the canvas defaults. The
// fields of "navigation" fall back one by one, so setting only
// "alignment_weight" keeps the configured cursor gating. A negative alignment
// weight fails validation.
//
// # Gaps
//
// Gap keys are logical row numbers written as strings, since JSON object keys
// are always strings. They are parsed and sorted into a [gaps.Map] when the
// scene is built. A gap key that is not a non-negative integer, or a negative
// size, fails validation. Sizes above [gaps.MaxSize] are capped.
//
// # Order
//
// Blocks are added to the canvas in file order. Navigation breaks score ties
// by that order, so reordering the "blocks" array can change which block a
// tie resolves to.
//
// [canvas.Canvas]: github.com/matzehuels/blockcanvas/pkg/canvas.Canvas
// [gaps.Map]: github.com/matzehuels/blockcanvas/pkg/gaps.Map
package scene

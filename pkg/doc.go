// Package pkg provides the libraries behind blockcanvas, a spatial layout
// and navigation engine for editors that place code blocks on an infinite
// canvas.
//
// # Overview
//
// The pkg directory is organized bottom-up:
//
//  1. [geom] - Grid cells, placements and bounds
//  2. [gaps] - Logical/physical row translation around decoration gaps
//  3. [nav] - Directional nearest-block search
//  4. [viewport] - Canvas origin, centering animation and pointer panning
//  5. [canvas] - Blocks, selection and cursors tied together
//  6. [scene] - JSON scene files
//  7. [config] - TOML settings
//  8. [api] - HTTP API over a canvas
//
// Cross-cutting concerns live in [errors] (coded errors), [observability]
// (hooks) and [buildinfo] (version metadata).
//
// # Data Flow
//
//	scene.json / config.toml
//	         ↓
//	    [scene] and [config] (decode and validate)
//	         ↓
//	    [canvas] (blocks on a [geom.Grid])
//	         ↓
//	    [nav] search, [gaps] row mapping, [viewport] centering
//	         ↓
//	    CLI output, terminal explorer, HTTP responses
//
// # Quick Start
//
//	c := canvas.New(canvas.WithViewportSize(800, 600))
//	c.Add(canvas.Block{ID: "main", Col: 5, Row: 5, Width: 100, Height: 100})
//	c.Add(canvas.Block{ID: "helper", Col: 5, Row: 15, Width: 100, Height: 100})
//
//	res := c.Navigate(nav.Down) // res.ID == "helper"
//	origin := c.Viewport().Origin()
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/geom
// [gaps]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/gaps
// [nav]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/nav
// [viewport]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/viewport
// [canvas]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/canvas
// [scene]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/scene
// [config]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/config
// [api]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/buildinfo
// [geom.Grid]: https://pkg.go.dev/github.com/matzehuels/blockcanvas/pkg/geom#Grid
package pkg

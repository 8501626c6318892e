// Package api serves a canvas over HTTP as JSON.
//
// # Routes
//
//	GET  /healthz
//	GET  /blocks                   all blocks in insertion order
//	GET  /blocks/{id}              one block with its bounds
//	GET  /blocks/{id}/rows         ?pixel_y=Y or ?row=N
//	POST /blocks/{id}/drag         {"dx": 5, "dy": -3}
//	POST /blocks/{id}/drop         snap the block to the grid
//	POST /select/{id}
//	POST /navigate/{direction}     left, right, up, down (or h, l, k, j)
//	POST /center/{id}
//	GET  /viewport
//	POST /viewport/pan             {"movement_x": 4, "movement_y": 0, "buttons": 1}
//	POST /viewport/release         end a pan and snap to the grid
//
// # Concurrency
//
// The canvas is single-threaded. The [Server] serializes every request
// behind one mutex, so handlers observe and mutate the canvas one at a time.
//
// # Errors
//
// Failures are returned as {"code": "...", "message": "..."}. Codes from
// [errors] map to statuses: *_NOT_FOUND is 404, INVALID_* and friends are
// 400, everything else is 500.
//
// [errors]: github.com/matzehuels/blockcanvas/pkg/errors
package api

package canvas

import (
	"context"
	"time"

	"github.com/matzehuels/blockcanvas/pkg/nav"
)

// DefaultDemoPattern is the direction cycle used when none is given.
var DefaultDemoPattern = []nav.Direction{nav.Right, nav.Down, nav.Left, nav.Up}

// Demo walks a canvas by cycling through a direction pattern.
type Demo struct {
	canvas  *Canvas
	pattern []nav.Direction
	next    int
}

// NewDemo creates a demo over c. An empty pattern uses DefaultDemoPattern.
func NewDemo(c *Canvas, pattern ...nav.Direction) *Demo {
	if len(pattern) == 0 {
		pattern = DefaultDemoPattern
	}
	p := make([]nav.Direction, len(pattern))
	copy(p, pattern)
	return &Demo{canvas: c, pattern: p}
}

// Step tries each direction of the pattern, starting at the current one,
// until the selection moves. The pattern position advances past the
// direction that moved. With nothing selected the first block is selected
// and returned as an unmoved result.
func (d *Demo) Step() nav.Result {
	if _, ok := d.canvas.Selected(); !ok {
		if len(d.canvas.blocks) == 0 {
			return nav.Result{}
		}
		first := d.canvas.blocks[0]
		d.canvas.setSelected(first.ID)
		return nav.Result{Candidate: nav.Candidate{ID: first.ID, Bounds: first.Bounds(d.canvas.grid)}}
	}

	var res nav.Result
	for i := range d.pattern {
		k := (d.next + i) % len(d.pattern)
		res = d.canvas.Navigate(d.pattern[k])
		if res.Moved {
			d.next = (k + 1) % len(d.pattern)
			return res
		}
	}
	return res
}

// Run calls Step every interval and passes the result to fn. It stops when
// fn returns false, returning nil, or when ctx is done, returning ctx.Err().
func (d *Demo) Run(ctx context.Context, interval time.Duration, fn func(nav.Result) bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(d.Step()) {
				return nil
			}
		}
	}
}

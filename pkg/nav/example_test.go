package nav_test

import (
	"fmt"

	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/nav"
)

func ExampleFind() {
	sel := nav.Selection{ID: "selected", Bounds: geom.Rect(100, 100, 100, 100)}
	blocks := []nav.Candidate{
		{ID: "closeMisaligned", Bounds: geom.Rect(250, 220, 100, 100)},
		{ID: "farAligned", Bounds: geom.Rect(100, 300, 100, 100)},
	}

	r := nav.Find(blocks, sel, nav.Down)
	fmt.Println(r.ID, r.Score, r.Moved)

	r = nav.Find(blocks, sel, nav.Up)
	fmt.Println(r.ID, r.Moved)
	// Output:
	// farAligned 100 true
	// selected false
}

package canvas

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/observability"
)

func squareCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := New()
	mustAdd(t, c, box("tl", 0, 0))
	mustAdd(t, c, box("tr", 10, 0))
	mustAdd(t, c, box("bl", 0, 10))
	mustAdd(t, c, box("br", 10, 10))
	return c
}

func TestDemoStepCycles(t *testing.T) {
	d := NewDemo(squareCanvas(t))

	want := []string{"tr", "br", "bl", "tl", "tr"}
	for i, id := range want {
		res := d.Step()
		if !res.Moved || res.ID != id {
			t.Fatalf("step %d = %s (moved=%v), want %s", i, res.ID, res.Moved, id)
		}
	}
}

func TestDemoStepSkipsBlockedDirections(t *testing.T) {
	c := New()
	mustAdd(t, c, box("a", 0, 0))
	mustAdd(t, c, box("b", 0, 10))

	d := NewDemo(c, nav.Right, nav.Down, nav.Up)
	if res := d.Step(); res.ID != "b" {
		t.Errorf("first step = %s, want b", res.ID)
	}
	if res := d.Step(); res.ID != "a" {
		t.Errorf("second step = %s, want a", res.ID)
	}
}

func TestDemoStepStuck(t *testing.T) {
	c := New()
	mustAdd(t, c, box("a", 0, 0))
	mustAdd(t, c, box("b", 0, 10))

	d := NewDemo(c, nav.Down)
	d.Step()
	res := d.Step()
	if res.Moved || res.ID != "b" {
		t.Errorf("stuck step = %+v, want unchanged b", res)
	}
}

func TestDemoStepSelectsFirstBlock(t *testing.T) {
	c := squareCanvas(t)
	_ = c.Remove("tl")

	rec := &recorder{}
	observability.SetCanvasHooks(rec)
	defer observability.Reset()

	res := NewDemo(c).Step()
	if res.Moved || res.ID != "tr" {
		t.Errorf("Step() = %+v, want unmoved tr", res)
	}
	if sel, ok := c.Selected(); !ok || sel.ID != "tr" {
		t.Errorf("Selected() = %v, want tr", sel)
	}
	if len(rec.selected) != 1 || rec.selected[0] != "tr" {
		t.Errorf("OnSelect calls = %v, want [tr]", rec.selected)
	}

	if res := NewDemo(New()).Step(); res.Moved || res.ID != "" {
		t.Errorf("Step() on empty canvas = %+v", res)
	}
}

func TestDemoRun(t *testing.T) {
	d := NewDemo(squareCanvas(t))

	var visited []string
	err := d.Run(context.Background(), time.Millisecond, func(r nav.Result) bool {
		visited = append(visited, r.ID)
		return len(visited) < 3
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(visited) != 3 || visited[2] != "bl" {
		t.Errorf("visited = %v, want [tr br bl]", visited)
	}
}

func TestDemoRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDemo(squareCanvas(t)).Run(ctx, time.Hour, func(nav.Result) bool { return true })
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

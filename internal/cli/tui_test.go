package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
)

// newTestExplorer returns a sized explorer over two stacked blocks. The
// terminal is 80x25 cells, so the viewport is 800x480 pixels.
func newTestExplorer(t *testing.T) ExplorerModel {
	t.Helper()
	cv := canvas.New()
	for _, b := range []canvas.Block{
		{ID: "a", Col: 0, Row: 0, Width: 100, Height: 100},
		{ID: "b", Col: 0, Row: 10, Width: 100, Height: 100},
	} {
		if _, err := cv.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	model, _ := newExplorerModel(cv).Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return model.(ExplorerModel)
}

func update(m ExplorerModel, msg tea.Msg) (ExplorerModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ExplorerModel), cmd
}

func TestExplorerResizeFramesSelection(t *testing.T) {
	m := newTestExplorer(t)
	v := m.Canvas.Viewport()
	if v.Width != 800 || v.Height != 480 {
		t.Errorf("viewport size = %vx%v, want 800x480", v.Width, v.Height)
	}
	if v.X != -350 || v.Y != -190 {
		t.Errorf("origin = %v, %v, want -350, -190", v.X, v.Y)
	}

	// Later resizes keep the origin.
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if v.X != -350 || v.Y != -190 {
		t.Errorf("origin after resize = %v, %v", v.X, v.Y)
	}
}

func TestExplorerNavigateKeys(t *testing.T) {
	m := newTestExplorer(t)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if sel, _ := m.Canvas.Selected(); sel.ID != "b" {
		t.Fatalf("selected = %q, want b", sel.ID)
	}
	if !strings.Contains(m.Status, "b") || !strings.Contains(m.Status, "score 100") {
		t.Errorf("status = %q", m.Status)
	}
	if v := m.Canvas.Viewport(); v.X != -350 || v.Y != 10 {
		t.Errorf("origin = %v, %v, want -350, 10", v.X, v.Y)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if !strings.Contains(m.Status, "no block down of b") {
		t.Errorf("status = %q", m.Status)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if sel, _ := m.Canvas.Selected(); sel.ID != "a" {
		t.Errorf("selected = %q, want a", sel.ID)
	}
}

func TestExplorerDragPansAndSnaps(t *testing.T) {
	m := newTestExplorer(t)
	v := m.Canvas.Viewport()

	m, _ = update(m, tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(m, tea.MouseMsg{X: 13, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if v.X != -380 || v.Y != -210 {
		t.Errorf("origin after drag = %v, %v, want -380, -210", v.X, v.Y)
	}

	m, _ = update(m, tea.MouseMsg{X: 13, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if v.X != -380 || v.Y != -220 {
		t.Errorf("origin after release = %v, %v, want -380, -220", v.X, v.Y)
	}
	if !strings.HasPrefix(m.Status, "snapped to") {
		t.Errorf("status = %q", m.Status)
	}
}

func TestExplorerMotionWithoutPress(t *testing.T) {
	m := newTestExplorer(t)
	m, _ = update(m, tea.MouseMsg{X: 13, Y: 6, Action: tea.MouseActionMotion})
	if v := m.Canvas.Viewport(); v.X != -350 || v.Y != -190 {
		t.Errorf("origin = %v, %v, want unchanged", v.X, v.Y)
	}
}

func TestExplorerClickSelects(t *testing.T) {
	m := newTestExplorer(t)

	// Cell (40, 22) is canvas point (50, 250), inside b.
	m, _ = update(m, tea.MouseMsg{X: 40, Y: 22, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(m, tea.MouseMsg{X: 40, Y: 22, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	sel, _ := m.Canvas.Selected()
	if sel.ID != "b" || sel.Cursor.Row != 2 {
		t.Errorf("selected = %q row %d, want b row 2", sel.ID, sel.Cursor.Row)
	}
	if m.Status != "selected b at row 2" {
		t.Errorf("status = %q", m.Status)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := newTestExplorer(t)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		_, cmd := update(m, key)
		if cmd == nil {
			t.Fatalf("%v: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", key)
		}
	}
}

func TestExplorerView(t *testing.T) {
	m := newTestExplorer(t)
	view := m.View()
	for _, want := range []string{"┏", "a", "▸", "viewport -350, -190"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n"); lines != 24 {
		t.Errorf("view has %d rows, want 24", lines)
	}
}

func TestExplorerViewClipsLargeBlocks(t *testing.T) {
	cv := canvas.New()
	for _, b := range []canvas.Block{
		{ID: "a", Col: 0, Row: 0, Width: 100, Height: 100},
		{ID: "far", Col: 1_000_000_000, Row: 1_000_000_000, Width: 100, Height: 100},
		{ID: "huge", Col: -1_000_000, Row: -1_000_000, Width: 1e8, Height: 1e8},
	} {
		if _, err := cv.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	model, _ := newExplorerModel(cv).Update(tea.WindowSizeMsg{Width: 80, Height: 25})

	view := model.(ExplorerModel).View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Fatalf("view has %d lines, want 25", len(lines))
	}
	for i, line := range lines[:24] {
		if n := len([]rune(line)); n != 80 {
			t.Errorf("row %d has %d cells, want 80", i, n)
		}
	}
}

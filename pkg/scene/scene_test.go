package scene

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/gaps"
	"github.com/matzehuels/blockcanvas/pkg/nav"
)

func TestReadFileAndBuild(t *testing.T) {
	s, err := ReadFile(filepath.Join("testdata", "editor.json"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	c, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.HeaderHeight() != 20 {
		t.Errorf("HeaderHeight() = %v, want 20", c.HeaderHeight())
	}
	if w := c.Viewport().Width; w != 800 {
		t.Errorf("viewport width = %v, want 800", w)
	}

	far, _ := c.Block("farAligned")
	want := []gaps.Gap{{Row: 2, Size: 3}, {Row: 10, Size: 1}}
	got := far.Gaps.Gaps()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Gaps() = %v, want %v", got, want)
	}

	main, _ := c.Block("main")
	if main.Cursor != (canvas.Cursor{Row: 1, Col: 2}) {
		t.Errorf("Cursor = %+v", main.Cursor)
	}

	res := c.Navigate(nav.Down)
	if res.ID != "farAligned" || res.Score != 100 {
		t.Errorf("Navigate(Down) = %+v, want farAligned with score 100", res)
	}
}

func TestBuildOptionPrecedence(t *testing.T) {
	s := &Scene{Blocks: []BlockSpec{{ID: "a"}}}
	c, err := s.Build(canvas.WithLineHeight(30), canvas.WithHeaderHeight(8))
	if err != nil {
		t.Fatal(err)
	}
	if c.LineHeight() != 30 || c.HeaderHeight() != 8 {
		t.Errorf("options not applied: line=%v header=%v", c.LineHeight(), c.HeaderHeight())
	}

	zero := 0.0
	s.LineHeight = 16
	s.HeaderHeight = &zero
	five := 5.0
	s.Navigation = &Navigation{AlignmentWeight: &five}
	c, err = s.Build(canvas.WithLineHeight(30), canvas.WithHeaderHeight(8))
	if err != nil {
		t.Fatal(err)
	}
	if c.LineHeight() != 16 || c.HeaderHeight() != 0 {
		t.Errorf("scene should override options: line=%v header=%v", c.LineHeight(), c.HeaderHeight())
	}
	if c.Tuning().AlignmentWeight != 5 {
		t.Errorf("Tuning() = %+v", c.Tuning())
	}
}

func TestBuildPartialNavigation(t *testing.T) {
	tests := []struct {
		name string
		json string
		opts []canvas.Option
		want nav.Tuning
	}{
		{
			name: "weight only keeps gating",
			json: `{"navigation": {"alignment_weight": 3}, "blocks": [{"id": "a"}]}`,
			want: nav.Tuning{AlignmentWeight: 3, CursorGating: true},
		},
		{
			name: "gating only keeps configured weight",
			json: `{"navigation": {"cursor_gating": false}, "blocks": [{"id": "a"}]}`,
			opts: []canvas.Option{canvas.WithTuning(nav.Tuning{AlignmentWeight: 4, CursorGating: true})},
			want: nav.Tuning{AlignmentWeight: 4, CursorGating: false},
		},
		{
			name: "empty object keeps configured tuning",
			json: `{"navigation": {}, "blocks": [{"id": "a"}]}`,
			opts: []canvas.Option{canvas.WithTuning(nav.Tuning{AlignmentWeight: 1.5, CursorGating: true})},
			want: nav.Tuning{AlignmentWeight: 1.5, CursorGating: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.json))
			if err != nil {
				t.Fatal(err)
			}
			c, err := s.Build(tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Tuning(); got != tt.want {
				t.Errorf("Tuning() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPartialNavigationKeepsCursorGating(t *testing.T) {
	// Cursor on the first line; "near" sits below it, "far" spans it.
	input := `{"navigation": {"alignment_weight": 3}, "blocks": [
		{"id": "sel", "width": 100, "height": 100},
		{"id": "near", "col": 8, "row": 3, "width": 100, "height": 100},
		{"id": "far", "col": 20, "width": 100, "height": 40}
	]}`
	s, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if res := c.Navigate(nav.Right); res.ID != "far" {
		t.Errorf("Navigate(Right) = %q, want far", res.ID)
	}
}

func TestBuildKeepsFileOrder(t *testing.T) {
	input := `{"blocks": [
		{"id": "sel", "width": 100, "height": 100},
		{"id": "right", "col": 6, "row": 10, "width": 100, "height": 100},
		{"id": "left", "col": -6, "row": 10, "width": 100, "height": 100}
	]}`
	s, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := s.Build()
	if res := c.Navigate(nav.Down); res.ID != "right" {
		t.Errorf("tie should resolve to the first block in the file, got %s", res.ID)
	}

	s.Blocks[1], s.Blocks[2] = s.Blocks[2], s.Blocks[1]
	c, _ = s.Build()
	if res := c.Navigate(nav.Down); res.ID != "left" {
		t.Errorf("tie should resolve to the first block in the file, got %s", res.ID)
	}
}

func TestValidate(t *testing.T) {
	neg := -1.0
	inf := math.Inf(1)
	negMS := -5
	tests := []struct {
		name  string
		scene Scene
	}{
		{"zero grid", Scene{Grid: &Grid{CellWidth: 0, CellHeight: 20}}},
		{"negative line height", Scene{LineHeight: -1}},
		{"negative header", Scene{HeaderHeight: &neg}},
		{"negative viewport", Scene{Viewport: &Viewport{Width: -1}}},
		{"negative animation", Scene{Viewport: &Viewport{AnimationMS: &negMS}}},
		{"duplicate id", Scene{Blocks: []BlockSpec{{ID: "a"}, {ID: "a"}}}},
		{"bad id", Scene{Blocks: []BlockSpec{{ID: "a/b"}}}},
		{"negative lines", Scene{Blocks: []BlockSpec{{ID: "a", Lines: -2}}}},
		{"gap key not a number", Scene{Blocks: []BlockSpec{{ID: "a", Gaps: map[string]int{"x": 1}}}}},
		{"negative gap key", Scene{Blocks: []BlockSpec{{ID: "a", Gaps: map[string]int{"-1": 1}}}}},
		{"negative gap size", Scene{Blocks: []BlockSpec{{ID: "a", Gaps: map[string]int{"1": -1}}}}},
		{"gap row twice", Scene{Blocks: []BlockSpec{{ID: "a", Gaps: map[string]int{"2": 1, "02": 1}}}}},
		{"unknown selection", Scene{Selected: "b", Blocks: []BlockSpec{{ID: "a"}}}},
		{"negative alignment weight", Scene{Navigation: &Navigation{AlignmentWeight: &neg}}},
		{"infinite alignment weight", Scene{Navigation: &Navigation{AlignmentWeight: &inf}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scene.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidScene) {
				t.Errorf("Validate() error = %v, want %s", err, errors.ErrCodeInvalidScene)
			}
		})
	}

	ok := Scene{Blocks: []BlockSpec{{}, {}, {ID: "a", Width: -10}}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestBuildCapsGapSize(t *testing.T) {
	input := fmt.Sprintf(`{"blocks": [{"id": "a", "gaps": {"1": %d, "2": %d}}]}`, math.MaxInt, math.MaxInt)
	s, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := c.Block("a")
	if got := a.Gaps.Size(1); got != gaps.MaxSize {
		t.Errorf("Size(1) = %d, want %d", got, gaps.MaxSize)
	}
	want := 3 + 2*int64(gaps.MaxSize)
	if got := int64(a.Gaps.LogicalToPhysical(3)); got != want {
		t.Errorf("LogicalToPhysical(3) = %d, want %d", got, want)
	}
}

func TestRead(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("Read() malformed error = %v", err)
	}
	if _, err := Read(strings.NewReader(`{"blocks": [{"id": "a"}, {"id": "a"}]}`)); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("Read() duplicate error = %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestFromCanvas(t *testing.T) {
	c := canvas.New(canvas.WithHeaderHeight(12))
	c.Add(canvas.Block{ID: "a", Width: 100, Height: 50, Lines: 6, Gaps: gaps.New(gaps.Gap{Row: 3, Size: 2})})
	c.Add(canvas.Block{ID: "b", Col: 0, Row: 10, Width: 100, Height: 50})
	c.Navigate(nav.Down)

	s := FromCanvas(c)
	if s.Selected != "b" {
		t.Errorf("Selected = %q, want b", s.Selected)
	}
	if *s.HeaderHeight != 12 {
		t.Errorf("HeaderHeight = %v, want 12", *s.HeaderHeight)
	}
	if s.Blocks[0].Gaps["3"] != 2 || s.Blocks[1].Gaps != nil {
		t.Errorf("gaps = %v, %v", s.Blocks[0].Gaps, s.Blocks[1].Gaps)
	}

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := WriteFile(path, s); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	rebuilt, err := back.Build()
	if err != nil {
		t.Fatal(err)
	}
	if sel, _ := rebuilt.Selected(); sel.ID != "b" {
		t.Errorf("rebuilt selection = %s, want b", sel.ID)
	}
	a, _ := rebuilt.Block("a")
	if a.Gaps.Size(3) != 2 {
		t.Errorf("rebuilt gap = %d, want 2", a.Gaps.Size(3))
	}
}

func TestWriteIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &Scene{Blocks: []BlockSpec{{ID: "a"}}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"blocks\"") {
		t.Errorf("Write() output not indented:\n%s", buf.String())
	}
}

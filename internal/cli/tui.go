package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// Pixels covered by one terminal cell.
const (
	cellPixelsX = 10.0
	cellPixelsY = 20.0
)

// frameInterval paces centering animation frames.
const frameInterval = 16 * time.Millisecond

// Explorer styles
var (
	explorerBlockStyle    = lipgloss.NewStyle().Foreground(colorGray)
	explorerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	explorerStatusStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [scene.json]",
		Short: "Explore a scene interactively in the terminal",
		Long: `Explore a scene interactively in the terminal.

Keys:
  arrows, h/j/k/l   move the selection
  c                 center on the selected block
  s                 snap the viewport to the grid
  q, esc            quit

Mouse:
  drag              pan the viewport (released pans snap to the grid)
  click             select the block under the pointer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newExplorerModel(cv), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// ExplorerModel - Interactive canvas
// =============================================================================

type frameMsg time.Time

// ExplorerModel is the bubbletea model for the interactive canvas.
type ExplorerModel struct {
	Canvas *canvas.Canvas
	Width  int
	Height int
	Status string

	lastX, lastY int
	pressed      bool
	sized        bool
}

func newExplorerModel(cv *canvas.Canvas) ExplorerModel {
	return ExplorerModel{Canvas: cv, Width: 80, Height: 24}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.Canvas.Viewport()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		v.Resize(float64(m.Width)*cellPixelsX, float64(m.canvasRows())*cellPixelsY)
		if !m.sized {
			m.sized = true
			m.jumpToSelection()
		}

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "right", "up", "down", "h", "j", "k", "l":
			dir, _ := nav.ParseDirection(key)
			sel, _ := m.Canvas.Selected()
			res := m.Canvas.Navigate(dir)
			if !res.Moved {
				m.Status = fmt.Sprintf("no block %s of %s", dir, idOf(sel))
				return m, nil
			}
			m.Status = fmt.Sprintf("%s %s %s (score %s)", idOf(sel), iconArrow, res.ID, formatFloat(res.Score))
			return m, m.animate()
		case "c":
			if sel, ok := m.Canvas.Selected(); ok {
				_ = m.Canvas.CenterOn(sel.ID)
				m.Status = "centered on " + sel.ID
				return m, m.animate()
			}
		case "s":
			p := v.Snap()
			m.Status = fmt.Sprintf("snapped to %s, %s", formatFloat(p.X), formatFloat(p.Y))
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m, m.animate()
	}
	return m, nil
}

func (m ExplorerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := m.Canvas.Viewport()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressed = true
		m.lastX, m.lastY = msg.X, msg.Y

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		dx, dy := msg.X-m.lastX, msg.Y-m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		v.PointerMove(viewport.PointerEvent{
			X:         float64(msg.X) * cellPixelsX,
			Y:         float64(msg.Y) * cellPixelsY,
			MovementX: float64(dx) * cellPixelsX,
			MovementY: float64(dy) * cellPixelsY,
			Buttons:   viewport.ButtonPrimary,
		})

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		if v.Dragging() {
			p := v.PointerUp()
			m.Status = fmt.Sprintf("snapped to %s, %s", formatFloat(p.X), formatFloat(p.Y))
			return m, nil
		}
		at := v.ScreenToCanvas(float64(msg.X)*cellPixelsX, float64(msg.Y)*cellPixelsY)
		if b, ok := m.Canvas.Click(at.X, at.Y); ok {
			m.Status = fmt.Sprintf("selected %s at row %d", b.ID, b.Cursor.Row)
		}
	}
	return m, nil
}

// jumpToSelection frames the selected block without animating.
func (m ExplorerModel) jumpToSelection() {
	sel, ok := m.Canvas.Selected()
	if !ok {
		return
	}
	v := m.Canvas.Viewport()
	t := viewport.CenterTarget(sel.Bounds(m.Canvas.Grid()), v.Width, v.Height)
	v.Cancel()
	v.X, v.Y = t.X, t.Y
}

// animate advances a running centering animation and schedules the next
// frame while it is still running.
func (m ExplorerModel) animate() tea.Cmd {
	if !m.Canvas.Viewport().Tick() {
		return nil
	}
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m ExplorerModel) View() string {
	rows := m.canvasRows()
	if m.Width <= 0 || rows <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", m.Width))
	}
	selected := make([][]bool, rows)
	for i := range selected {
		selected[i] = make([]bool, m.Width)
	}

	sel, _ := m.Canvas.Selected()
	v := m.Canvas.Viewport()
	for _, b := range m.Canvas.Blocks() {
		isSel := sel != nil && b.ID == sel.ID
		m.drawBlock(grid, selected, v, b, isSel)
	}

	var out strings.Builder
	for r := range grid {
		out.WriteString(renderRow(grid[r], selected[r]))
		out.WriteString("\n")
	}

	status := m.Status
	if status == "" {
		status = "arrows/hjkl navigate  drag pan  c center  s snap  q quit"
	}
	out.WriteString(explorerStatusStyle.Render(fmt.Sprintf("%s  %s  viewport %s, %s",
		StyleTitle.Render(idOf(sel)), status, formatFloat(v.X), formatFloat(v.Y))))
	return out.String()
}

func (m ExplorerModel) drawBlock(grid [][]rune, selected [][]bool, v *viewport.Viewport, b *canvas.Block, isSel bool) {
	const (
		thin  = "┌┐└┘─│"
		heavy = "┏┓┗┛━┃"
	)
	chars := []rune(thin)
	if isSel {
		chars = []rune(heavy)
	}

	bounds := b.Bounds(m.Canvas.Grid())
	left, top := toScreen(v, bounds.Left, bounds.Top)
	right, bottom := toScreen(v, bounds.Right, bounds.Bottom)
	right, bottom = right-1, bottom-1
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	set := func(x, y int, ch rune) {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x] = ch
		selected[y][x] = isSel
	}

	rows, cols := len(grid), m.Width
	if right < 0 || bottom < 0 || left >= cols || top >= rows {
		return
	}
	// Interior ranges clamped to the visible grid.
	x0, x1 := max(left+1, 0), min(right, cols)
	y0, y1 := max(top+1, 0), min(bottom, rows)

	for x := x0; x < x1; x++ {
		set(x, top, chars[4])
		set(x, bottom, chars[4])
	}
	for y := y0; y < y1; y++ {
		set(left, y, chars[5])
		set(right, y, chars[5])
		for x := x0; x < x1; x++ {
			set(x, y, ' ')
		}
	}
	set(left, top, chars[0])
	set(right, top, chars[1])
	set(left, bottom, chars[2])
	set(right, bottom, chars[3])

	for i, ch := range []rune(b.ID) {
		if left+1+i >= right {
			break
		}
		set(left+1+i, top, ch)
	}

	if isSel {
		cy, err := m.Canvas.CursorY(b.ID)
		if err == nil {
			_, y := toScreen(v, bounds.Left, bounds.Top+cy)
			if y > top && y < bottom {
				set(left+1, y, '▸')
			}
		}
	}
}

func (m ExplorerModel) canvasRows() int {
	return m.Height - 1
}

// toScreen converts canvas pixels to terminal cells, clamped to the int32
// range so far away blocks stay representable.
func toScreen(v *viewport.Viewport, x, y float64) (int, int) {
	p := v.CanvasToScreen(x, y)
	return screenCell(p.X / cellPixelsX), screenCell(p.Y / cellPixelsY)
}

func screenCell(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Floor(v))))
}

func renderRow(row []rune, selected []bool) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && selected[i] == selected[start] {
			continue
		}
		style := explorerBlockStyle
		if selected[start] {
			style = explorerSelectedStyle
		}
		b.WriteString(style.Render(string(row[start:i])))
		start = i
	}
	return b.String()
}

func idOf(b *canvas.Block) string {
	if b == nil {
		return "-"
	}
	return b.ID
}

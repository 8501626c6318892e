package viewport

import (
	"math"
	"time"

	"github.com/matzehuels/blockcanvas/pkg/geom"
)

// Default viewport dimensions in pixels.
const (
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
)

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Buttons is a pointer button bitmask, as reported by pointer events.
type Buttons int

const (
	ButtonPrimary   Buttons = 1 << iota // usually the left button
	ButtonSecondary                     // usually the right button
	ButtonMiddle
)

// PointerEvent is a pointer move or release.
type PointerEvent struct {
	X, Y                 float64
	MovementX, MovementY float64
	Buttons              Buttons
}

// Viewport is the pannable window onto the canvas.
// X and Y are the canvas position of the viewport's top-left corner.
type Viewport struct {
	X, Y          float64
	Width, Height float64
	Grid          geom.Grid

	// Duration animates CenterOn when positive.
	Duration time.Duration

	DragEnabled bool
	DragButtons Buttons

	// Clock returns the current time; tests replace it.
	Clock func() time.Time

	anim     *animation
	dragging bool
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithDuration animates centering over d.
func WithDuration(d time.Duration) Option {
	return func(v *Viewport) { v.Duration = d }
}

// WithDragButtons selects the buttons that pan the viewport.
func WithDragButtons(b Buttons) Option {
	return func(v *Viewport) { v.DragButtons = b }
}

// WithDragEnabled turns pointer panning on or off.
func WithDragEnabled(enabled bool) Option {
	return func(v *Viewport) { v.DragEnabled = enabled }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(v *Viewport) { v.Clock = now }
}

// WithOrigin sets the initial origin.
func WithOrigin(x, y float64) Option {
	return func(v *Viewport) { v.X, v.Y = x, y }
}

// New creates a viewport of the given size with dragging enabled on the
// primary button.
func New(width, height float64, grid geom.Grid, opts ...Option) *Viewport {
	v := &Viewport{
		Width:       width,
		Height:      height,
		Grid:        grid,
		DragEnabled: true,
		DragButtons: ButtonPrimary,
		Clock:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Origin returns the current top-left corner.
func (v *Viewport) Origin() Point { return Point{X: v.X, Y: v.Y} }

// Bounds returns the visible canvas rectangle.
func (v *Viewport) Bounds() geom.Bounds {
	return geom.Rect(v.X, v.Y, v.Width, v.Height)
}

// Visible reports whether b overlaps the visible rectangle.
func (v *Viewport) Visible(b geom.Bounds) bool {
	return v.Bounds().Intersects(b)
}

// Resize changes the frame size without moving the origin.
func (v *Viewport) Resize(width, height float64) {
	v.Width, v.Height = width, height
}

// ScreenToCanvas converts a position relative to the viewport into canvas
// pixels.
func (v *Viewport) ScreenToCanvas(x, y float64) Point {
	return Point{X: v.X + x, Y: v.Y + y}
}

// CanvasToScreen converts canvas pixels into a position relative to the
// viewport.
func (v *Viewport) CanvasToScreen(x, y float64) Point {
	return Point{X: x - v.X, Y: y - v.Y}
}

// CenterTarget returns the origin that frames b in a width x height window.
// The y coordinate never exceeds b.Top.
func CenterTarget(b geom.Bounds, width, height float64) Point {
	idealX := b.CenterX() - width/2
	idealY := b.CenterY() - height/2
	return Point{X: idealX, Y: math.Min(b.Top, idealY)}
}

// CenterOn moves the viewport to frame b. With a positive Duration the move
// is animated and completes on a later Tick; otherwise it is immediate.
// It returns the target origin.
func (v *Viewport) CenterOn(b geom.Bounds) Point {
	target := CenterTarget(b, v.Width, v.Height)
	if v.Duration <= 0 {
		v.anim = nil
		v.X, v.Y = target.X, target.Y
		return target
	}
	v.anim = &animation{
		from:     v.Origin(),
		to:       target,
		start:    v.now(),
		duration: v.Duration,
	}
	return target
}

// Tick advances a running animation to the current time and reports whether
// it is still running.
func (v *Viewport) Tick() bool {
	if v.anim == nil {
		return false
	}
	p, done := v.anim.at(v.now())
	v.X, v.Y = p.X, p.Y
	if done {
		v.anim = nil
	}
	return !done
}

// Animating reports whether a centering animation is in flight.
func (v *Viewport) Animating() bool { return v.anim != nil }

// Target returns the destination of the running animation.
func (v *Viewport) Target() (Point, bool) {
	if v.anim == nil {
		return Point{}, false
	}
	return v.anim.to, true
}

// Cancel stops a running animation where it is.
func (v *Viewport) Cancel() { v.anim = nil }

// Dragging reports whether a pointer drag is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

// PointerMove pans by the pointer movement while a drag button is held.
// Content follows the pointer, so the origin moves against it. It reports
// whether the event panned the viewport.
func (v *Viewport) PointerMove(ev PointerEvent) bool {
	if !v.DragEnabled || ev.Buttons&v.DragButtons == 0 {
		return false
	}
	v.anim = nil
	v.dragging = true
	v.X -= ev.MovementX
	v.Y -= ev.MovementY
	return true
}

// PointerUp ends a drag and snaps the origin to the grid. Releasing without
// a drag in progress leaves the origin untouched.
func (v *Viewport) PointerUp() Point {
	if !v.dragging {
		return v.Origin()
	}
	v.dragging = false
	return v.Snap()
}

// Snap rounds the origin to the nearest grid cell on each axis.
func (v *Viewport) Snap() Point {
	v.X, v.Y = v.Grid.Snap(v.X, v.Y)
	return v.Origin()
}

func (v *Viewport) now() time.Time {
	if v.Clock == nil {
		return time.Now()
	}
	return v.Clock()
}

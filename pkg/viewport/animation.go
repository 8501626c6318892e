package viewport

import (
	"math"
	"time"
)

type animation struct {
	from, to Point
	start    time.Time
	duration time.Duration
}

// at returns the interpolated origin at now and whether the animation ended.
// The final frame lands exactly on the target.
func (a *animation) at(now time.Time) (Point, bool) {
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration || a.duration <= 0 {
		return a.to, true
	}
	t := easeOutCubic(math.Max(float64(elapsed)/float64(a.duration), 0))
	return Point{
		X: a.from.X + (a.to.X-a.from.X)*t,
		Y: a.from.Y + (a.to.Y-a.from.Y)*t,
	}, false
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

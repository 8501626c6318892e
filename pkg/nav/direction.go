package nav

import (
	"strings"

	"github.com/matzehuels/blockcanvas/pkg/errors"
)

// Direction is a keyboard navigation direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists all directions in declaration order.
var Directions = []Direction{Left, Right, Up, Down}

var directionNames = map[string]Direction{
	"left":  Left,
	"h":     Left,
	"right": Right,
	"l":     Right,
	"up":    Up,
	"k":     Up,
	"down":  Down,
	"j":     Down,
}

// ParseDirection parses a direction name. Matching is case-insensitive and
// accepts the vi keys h, j, k and l.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q (want left, right, up or down)", s)
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

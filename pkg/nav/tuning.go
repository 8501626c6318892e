package nav

// DefaultAlignmentWeight scales the perpendicular offset against the
// primary distance. At 2.0 a block that lines up is preferred over one that is
// merely closer but diagonal.
const DefaultAlignmentWeight = 2.0

// Tuning holds the heuristics that shape navigation.
type Tuning struct {
	// AlignmentWeight multiplies the secondary (perpendicular) distance.
	AlignmentWeight float64 `json:"alignment_weight" toml:"alignment_weight"`

	// CursorGating restricts left/right moves to blocks whose vertical span
	// contains the cursor. When false, horizontal moves are scored like
	// vertical ones against vertical centers.
	CursorGating bool `json:"cursor_gating" toml:"cursor_gating"`
}

// DefaultTuning returns the standard navigation heuristics.
func DefaultTuning() Tuning {
	return Tuning{
		AlignmentWeight: DefaultAlignmentWeight,
		CursorGating:    true,
	}
}

// Option adjusts the tuning used by a single search.
type Option func(*Tuning)

// WithTuning replaces the whole tuning.
func WithTuning(t Tuning) Option {
	return func(dst *Tuning) { *dst = t }
}

// WithAlignmentWeight sets the secondary distance multiplier.
func WithAlignmentWeight(w float64) Option {
	return func(t *Tuning) { t.AlignmentWeight = w }
}

// WithCursorGating enables or disables cursor gating for horizontal moves.
func WithCursorGating(enabled bool) Option {
	return func(t *Tuning) { t.CursorGating = enabled }
}

func resolve(opts []Option) Tuning {
	t := DefaultTuning()
	for _, opt := range opts {
		if opt != nil {
			opt(&t)
		}
	}
	return t
}

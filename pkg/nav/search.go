package nav

import (
	"math"
	"sort"

	"github.com/matzehuels/blockcanvas/pkg/geom"
)

// Candidate is a block that navigation may move to.
type Candidate struct {
	ID     string      `json:"id"`
	Bounds geom.Bounds `json:"bounds"`
}

// Selection is the block navigation starts from.
type Selection struct {
	ID     string
	Bounds geom.Bounds
	// CursorY is the cursor's y relative to Bounds.Top.
	CursorY float64
}

// AbsoluteCursorY returns the cursor y in canvas pixels.
func (s Selection) AbsoluteCursorY() float64 { return s.Bounds.Top + s.CursorY }

// Result is the outcome of a search. When Moved is false the candidate is
// the selection itself and Score is 0.
type Result struct {
	Candidate
	Score float64 `json:"score"`
	Moved bool    `json:"moved"`
}

// Reason explains why a candidate was rejected.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonSelf          Reason = "selected block"
	ReasonNotPastEdge   Reason = "not past edge"
	ReasonCursorOutside Reason = "cursor outside span"
	ReasonInvalidScore  Reason = "invalid score"
)

// Scored is a candidate with its distance breakdown.
type Scored struct {
	Candidate
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Score     float64 `json:"score"`
	Qualified bool    `json:"qualified"`
	Reason    Reason  `json:"reason,omitempty"`
}

// Find returns the best candidate in direction dir, or an unchanged result
// carrying the selection when no candidate qualifies.
//
// Candidates with the selection's ID are skipped. Ties on score resolve to
// the earliest candidate in the slice.
func Find(candidates []Candidate, sel Selection, dir Direction, opts ...Option) Result {
	t := resolve(opts)

	res := Result{Candidate: Candidate{ID: sel.ID, Bounds: sel.Bounds}}
	best := math.Inf(1)
	for _, c := range candidates {
		s := Score(sel, c, dir, t)
		if !s.Qualified || s.Score >= best {
			continue
		}
		best = s.Score
		res = Result{Candidate: c, Score: s.Score, Moved: true}
	}
	return res
}

// Rank scores every candidate. Qualified candidates come first, ordered by
// score; ties and rejected candidates keep input order.
func Rank(candidates []Candidate, sel Selection, dir Direction, opts ...Option) []Scored {
	t := resolve(opts)

	out := make([]Scored, len(candidates))
	for i, c := range candidates {
		out[i] = Score(sel, c, dir, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Qualified != out[j].Qualified {
			return out[i].Qualified
		}
		if !out[i].Qualified {
			return false
		}
		return out[i].Score < out[j].Score
	})
	return out
}

// Score evaluates a single candidate against the selection.
// Rejected candidates have Qualified == false and an infinite Score.
func Score(sel Selection, c Candidate, dir Direction, t Tuning) Scored {
	s := Scored{Candidate: c, Score: math.Inf(1)}
	if c.ID == sel.ID {
		s.Reason = ReasonSelf
		return s
	}

	primary, ok := edgeGap(sel.Bounds, c.Bounds, dir)
	if !ok {
		s.Reason = ReasonNotPastEdge
		return s
	}
	s.Primary = primary

	var score float64
	switch {
	case dir.Vertical():
		s.Secondary = math.Abs(c.Bounds.CenterX() - sel.Bounds.CenterX())
		score = primary + t.AlignmentWeight*s.Secondary
	case t.CursorGating:
		if !c.Bounds.SpansY(sel.AbsoluteCursorY()) {
			s.Reason = ReasonCursorOutside
			return s
		}
		score = primary
	default:
		s.Secondary = math.Abs(c.Bounds.CenterY() - sel.Bounds.CenterY())
		score = primary + t.AlignmentWeight*s.Secondary
	}

	if math.IsNaN(score) {
		s.Reason = ReasonInvalidScore
		return s
	}
	s.Score = score
	s.Qualified = true
	return s
}

// edgeGap returns the non-negative edge-to-edge distance from sel to c along
// dir, and false when c's near edge has not cleared sel's far edge.
func edgeGap(sel, c geom.Bounds, dir Direction) (float64, bool) {
	switch dir {
	case Down:
		return c.Top - sel.Bottom, c.Top >= sel.Bottom
	case Up:
		return sel.Top - c.Bottom, c.Bottom <= sel.Top
	case Right:
		return c.Left - sel.Right, c.Left >= sel.Right
	case Left:
		return sel.Left - c.Right, c.Right <= sel.Left
	}
	return 0, false
}

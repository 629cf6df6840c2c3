// Package engine implements the search and evaluation core of the chess
// engine: the score algebra, the tapered piece-square evaluator, the
// negamax/alpha-beta/quiescence search, the time manager, and the
// iterative-deepening driver. It consumes a board.Position and nothing
// else — no I/O, no UCI parsing.
package engine

import "fmt"

// Score is a centipawn evaluation or a forced mate distance, always from
// the perspective of the side to move. Centipawn and Mate form a single
// total order: being mated soonest is the minimum, delivering mate soonest
// is the maximum, and every centipawn value sits strictly between the two
// families of mates. Do not replace this ordering with a plain signed
// integer encoding — negamax cutoffs rely on it (see DESIGN.md).
type Score struct {
	isMate bool
	cp     int16
	mate   int8
}

// CP constructs a centipawn score.
func CP(cp int16) Score {
	return Score{cp: cp}
}

// Mate constructs a mate-in-n score. n > 0 means we deliver mate in n
// plies; n < 0 means we are mated in |n| plies; n == 0 means we are
// presently in checkmate.
func Mate(n int8) Score {
	return Score{isMate: true, mate: n}
}

// MinScore is the absolute minimum score: being mated right now.
func MinScore() Score { return Mate(0) }

// MaxScore is the absolute maximum score: delivering mate this ply.
func MaxScore() Score { return Mate(1) }

// IsMate reports whether the score represents a forced mate.
func (s Score) IsMate() bool { return s.isMate }

// CPValue returns the centipawn magnitude; only meaningful if !IsMate().
func (s Score) CPValue() int16 { return s.cp }

// MateIn returns the mate-in-n count; only meaningful if IsMate().
func (s Score) MateIn() int8 { return s.mate }

// Flip inverts perspective across a ply of recursion: a mate counter is
// incremented by one ply in the process, since a mate one ply further down
// the tree is one ply further away from the root.
//
//	cp(c)      -> cp(-c)
//	mate(0)    -> mate(1)
//	mate(+m)   -> mate(-(m+1))
//	mate(-m)   -> mate(m+1)
func (s Score) Flip() Score {
	if !s.isMate {
		return CP(-s.cp)
	}
	if s.mate == 0 {
		return Mate(1)
	}
	if s.mate > 0 {
		return Mate(-(s.mate + 1))
	}
	return Mate(-s.mate + 1)
}

// Negate is a pure sign flip with no ply shift, for contexts such as
// transposition-table re-scoring or debug printing where a ply shift would
// be wrong. It must never be applied to Mate(0) — there is no "negative
// zero" ply count to represent being mated from the other side's view.
func (s Score) Negate() Score {
	if s.isMate && s.mate == 0 {
		panic("engine: Negate called on Mate(0)")
	}
	if !s.isMate {
		return CP(-s.cp)
	}
	return Mate(-s.mate)
}

// Cmp returns -1, 0, or 1 as s is less than, equal to, or greater than other.
func (s Score) Cmp(other Score) int {
	switch {
	case !s.isMate && !other.isMate:
		return cmpInt16(s.cp, other.cp)
	case !s.isMate && other.isMate:
		// Centipawn vs mate: mated (m<=0) is less than any centipawn score;
		// delivering mate (m>0) is greater than any centipawn score.
		if other.mate <= 0 {
			return 1
		}
		return -1
	case s.isMate && !other.isMate:
		if s.mate <= 0 {
			return -1
		}
		return 1
	default:
		return cmpMate(s.mate, other.mate)
	}
}

// cmpMate implements the four-quadrant mate-vs-mate comparison: being
// mated sooner is worse (fewer plies until disaster), delivering mate
// sooner is better (fewer plies until victory), and a side under threat is
// always worse off than a side delivering mate.
func cmpMate(m1, m2 int8) int {
	switch {
	case m1 <= 0 && m2 <= 0:
		// Both losing (or in mate): larger magnitude is better, so compare
		// the other way around — fewer plies until mated is the minimum.
		return cmpInt8(m2, m1)
	case m1 > 0 && m2 > 0:
		// Both delivering mate: fewer plies until mate is better.
		return cmpInt8(m2, m1)
	case m1 > 0:
		// m1 delivers, m2 is mated: m1 wins.
		return 1
	default:
		return -1
	}
}

func cmpInt16(a, b int16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt8(a, b int8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less, Greater and Equal are readability wrappers over Cmp.
func (s Score) Less(other Score) bool    { return s.Cmp(other) < 0 }
func (s Score) Greater(other Score) bool { return s.Cmp(other) > 0 }
func (s Score) Equal(other Score) bool   { return s.Cmp(other) == 0 }

// UCIScore returns the score's kind and its magnitude, widened to i32, in
// the form the UCI `info score` field expects: either "cp <n>" or
// "mate <n>".
func (s Score) UCIScore() (kind string, value int32) {
	if s.isMate {
		return "mate", int32(s.mate)
	}
	return "cp", int32(s.cp)
}

func (s Score) String() string {
	if s.isMate {
		return fmt.Sprintf("Mate(%d)", s.mate)
	}
	return fmt.Sprintf("CP(%d)", s.cp)
}

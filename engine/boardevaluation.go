package engine

import "github.com/sixfold-origami/patch/board"

// BoardEvaluation bundles what a search node concluded: the move that led
// to it (if any), its score, the deepest leaf reached beneath it, and
// whether any part of that subtree was cut short by the deadline.
type BoardEvaluation struct {
	Move            board.Move
	HasMove         bool
	Score           Score
	Depth           uint8
	TerminatedEarly bool
}

// ScoreEval builds a clean (non-early, no move) evaluation. Used at
// terminal nodes: checkmate, stalemate, and quiescence stand-pat.
func ScoreEval(s Score, depth uint8) BoardEvaluation {
	return BoardEvaluation{Score: s, Depth: depth}
}

// ScoreEarlyEval builds an evaluation for a node cut short by the deadline.
func ScoreEarlyEval(s Score, depth uint8) BoardEvaluation {
	return BoardEvaluation{Score: s, Depth: depth, TerminatedEarly: true}
}

// MinEval is the absolute minimum evaluation, used as the reduction
// identity before any child has been folded in.
func MinEval() BoardEvaluation {
	return BoardEvaluation{Score: MinScore()}
}

// FromChild lifts a child node's evaluation up through the move that
// produced it: the score changes perspective (Flip, which also advances
// any mate counter by one ply), the move is recorded, and depth/early-exit
// status pass through unchanged.
func FromChild(child BoardEvaluation, mv board.Move) BoardEvaluation {
	return BoardEvaluation{
		Move:            mv,
		HasMove:         true,
		Score:           child.Score.Flip(),
		Depth:           child.Depth,
		TerminatedEarly: child.TerminatedEarly,
	}
}

// Overwrite replaces Move, Score and TerminatedEarly from other, but keeps
// Depth as the maximum of the two — so a parent's reported depth is always
// the deepest leaf seen across every sibling explored so far, not just the
// one that happened to win.
func (b BoardEvaluation) Overwrite(other BoardEvaluation) BoardEvaluation {
	depth := b.Depth
	if other.Depth > depth {
		depth = other.Depth
	}
	return BoardEvaluation{
		Move:            other.Move,
		HasMove:         other.HasMove,
		Score:           other.Score,
		Depth:           depth,
		TerminatedEarly: other.TerminatedEarly,
	}
}

// Less, Greater and Equal compare BoardEvaluations by Score alone; Move,
// Depth and TerminatedEarly are out-of-band metadata the ordering ignores.
func (b BoardEvaluation) Less(other BoardEvaluation) bool    { return b.Score.Less(other.Score) }
func (b BoardEvaluation) Greater(other BoardEvaluation) bool { return b.Score.Greater(other.Score) }
func (b BoardEvaluation) Equal(other BoardEvaluation) bool   { return b.Score.Equal(other.Score) }

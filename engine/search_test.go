package engine

import (
	"testing"

	"github.com/sixfold-origami/patch/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_StartingPositionDepthOne(t *testing.T) {
	pos := board.MustParseFEN(board.InitialPosition)
	searcher := &Searcher{HorizonDepth: 1}

	eval := searcher.Evaluate(pos, MinScore(), MaxScore(), 0)

	require.True(t, eval.HasMove)
	assert.False(t, eval.Score.IsMate())
	assert.LessOrEqual(t, abs16(eval.Score.CPValue()), int16(50))
}

func TestSearch_MateInOne(t *testing.T) {
	// White rook a1, white king g1, black king g8 boxed by its own pawns;
	// Ra8# is mate.
	pos := board.MustParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	searcher := &Searcher{HorizonDepth: 2}

	eval := searcher.Evaluate(pos, MinScore(), MaxScore(), 0)

	require.True(t, eval.HasMove)
	assert.True(t, eval.Score.IsMate())
	assert.Equal(t, int8(1), eval.Score.MateIn())
	assert.Equal(t, "a1a8", eval.Move.ToUCI())
}

func TestSearch_CheckmateReturnsMateZero(t *testing.T) {
	// Fool's mate: black has just delivered checkmate to white.
	pos := board.MustParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	searcher := &Searcher{HorizonDepth: 3}

	eval := searcher.Evaluate(pos, MinScore(), MaxScore(), 0)

	assert.Equal(t, Mate(0), eval.Score)
	assert.False(t, eval.HasMove)
}

func TestSearch_StalemateReturnsCentipawnZero(t *testing.T) {
	pos := board.MustParseFEN("5k2/5P2/5K2/8/8/8/8/8 b - - 0 1")
	searcher := &Searcher{HorizonDepth: 3}

	eval := searcher.Evaluate(pos, MinScore(), MaxScore(), 0)

	assert.Equal(t, CP(0), eval.Score)
	assert.False(t, eval.HasMove)
}

func TestSearch_ExpiredDeadlineTerminatesEarly(t *testing.T) {
	pos := board.MustParseFEN(board.InitialPosition)
	past := Deadline{HasStopAt: true} // zero time.Time is always in the past
	searcher := &Searcher{HorizonDepth: 4, Deadline: past}

	eval := searcher.Evaluate(pos, MinScore(), MaxScore(), 0)

	assert.True(t, eval.TerminatedEarly)
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

package engine

import (
	"testing"

	"github.com/sixfold-origami/patch/board"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_StartingPositionIsNearZero(t *testing.T) {
	pos := board.MustParseFEN(board.InitialPosition)
	score := Evaluate(&pos)
	assert.False(t, score.IsMate())
	assert.InDelta(t, 0, int(score.CPValue()), 50)
}

func TestEvaluate_PerspectiveFlipSumsToZero(t *testing.T) {
	white := board.MustParseFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	black := board.MustParseFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 4 4")

	whiteScore := Evaluate(&white)
	blackScore := Evaluate(&black)

	assert.Equal(t, whiteScore.CPValue(), -blackScore.CPValue())
}

func TestEvaluate_StartingPhaseIsMaximal(t *testing.T) {
	pos := board.MustParseFEN(board.InitialPosition)
	assert.Equal(t, 24, pos.Phase())
}

func TestEvaluate_MaterialAdvantageIsPositive(t *testing.T) {
	// White is up a rook with symmetric pawn structure otherwise.
	pos := board.MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	score := Evaluate(&pos)
	assert.Greater(t, score.CPValue(), int16(0))
}

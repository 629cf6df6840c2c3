package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_ToUCI(t *testing.T) {
	mv := Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Piece: Pawn, Flag: FlagDoublePush}
	assert.Equal(t, "e2e4", mv.ToUCI())

	promo := Move{From: SquareOf(4, 6), To: SquareOf(4, 7), Piece: Pawn, Promotion: Queen}
	assert.Equal(t, "e7e8q", promo.ToUCI())
}

func TestParseUCIMove_ResolvesLegalMove(t *testing.T) {
	pos := MustParseFEN(InitialPosition)
	mv, ok := ParseUCIMove(&pos, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, Pawn, mv.Piece)
	assert.Equal(t, FlagDoublePush, mv.Flag)
}

func TestParseUCIMove_RejectsIllegalMove(t *testing.T) {
	pos := MustParseFEN(InitialPosition)
	_, ok := ParseUCIMove(&pos, "e2e5")
	assert.False(t, ok)
}

func TestMake_UpdatesSideToMoveAndCastling(t *testing.T) {
	pos := MustParseFEN(InitialPosition)
	mv, ok := ParseUCIMove(&pos, "e2e4")
	assert.True(t, ok)

	next := pos.Make(mv)
	assert.False(t, next.WhiteToMove)
	assert.Equal(t, pos.Castling, next.Castling)
	assert.Equal(t, SquareOf(4, 2), next.EnPassant)
}

func TestMake_CastlingMovesRook(t *testing.T) {
	pos := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv, ok := ParseUCIMove(&pos, "e1g1")
	assert.True(t, ok)

	next := pos.Make(mv)
	assert.True(t, next.Pieces[White][Rook].Has(SquareOf(5, 0)))
	assert.False(t, next.Pieces[White][Rook].Has(SquareOf(7, 0)))
	assert.Equal(t, uint8(0), next.Castling&(CastleWhiteKingside|CastleWhiteQueenside))
}

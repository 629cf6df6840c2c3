package board

import "math/rand"

// Zobrist hashing keys. The search's transposition table is defined but not
// consulted (see engine.TranspositionTable and DESIGN.md); these keys exist
// so that future work has a board hash to key on, per the spec's design
// notes on the transposition table.
var (
	zobristPiece    [2][NumPieceTypes + 1][64]uint64
	zobristCastling [16]uint64
	zobristEnPassant [8]uint64
	zobristSide     uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5151C0DEFEEDFACE))
	for c := range zobristPiece {
		for pt := range zobristPiece[c] {
			for sq := range zobristPiece[c][pt] {
				zobristPiece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// Hash computes the Zobrist hash of the position from scratch.
func (p *Position) Hash() uint64 {
	var h uint64
	for _, c := range [2]Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.Pop()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	h ^= zobristCastling[p.Castling]
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	if !p.WhiteToMove {
		h ^= zobristSide
	}
	return h
}

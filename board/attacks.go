package board

// Attack generation: precomputed tables for knights, kings and pawns, plus
// ray-casting for sliding pieces. This trades the raw speed of magic
// bitboards (see SPEC_FULL.md §4.G) for code simple enough to trust
// without running it.

var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard
var pawnAttacks [2][64]Bitboard

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenDirs = append(append([][2]int{}, bishopDirs...), rookDirs...)

func init() {
	for sq := 0; sq < 64; sq++ {
		s := Square(sq)
		file, rank := s.File(), s.Rank()

		for _, d := range knightDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				knightAttacks[sq].Set(SquareOf(f, r))
			}
		}
		for _, d := range kingDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				kingAttacks[sq].Set(SquareOf(f, r))
			}
		}
		// White pawns attack one rank up; black pawns attack one rank down.
		for _, df := range [2]int{-1, 1} {
			if f, r := file+df, rank+1; f >= 0 && f < 8 && r < 8 {
				pawnAttacks[White][sq].Set(SquareOf(f, r))
			}
			if f, r := file+df, rank-1; f >= 0 && f < 8 && r >= 0 {
				pawnAttacks[Black][sq].Set(SquareOf(f, r))
			}
		}
	}
}

// slidingAttacks casts rays from sq in the given directions until it hits
// the edge of the board or an occupied square (inclusive of that square).
func slidingAttacks(sq Square, occupied Bitboard, dirs [][2]int) Bitboard {
	var attacks Bitboard
	file, rank := sq.File(), sq.Rank()
	for _, d := range dirs {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			target := SquareOf(f, r)
			attacks.Set(target)
			if occupied.Has(target) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occupied := p.AllOccupied()

	if knightAttacks[sq]&p.Pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Pieces[by][King] != 0 {
		return true
	}
	// A pawn of color `by` attacks sq if sq is one of that pawn's attack
	// squares, i.e. sq is attacked from the squares pawnAttacks[by.Other()]
	// would list as attacked by a pawn standing on sq for the other color.
	if pawnAttacks[by.Other()][sq]&p.Pieces[by][Pawn] != 0 {
		return true
	}
	bishopLike := p.Pieces[by][Bishop] | p.Pieces[by][Queen]
	if slidingAttacks(sq, occupied, bishopDirs)&bishopLike != 0 {
		return true
	}
	rookLike := p.Pieces[by][Rook] | p.Pieces[by][Queen]
	if slidingAttacks(sq, occupied, rookDirs)&rookLike != 0 {
		return true
	}
	return false
}

package board

// Make applies a move and returns the resulting position. Position is a
// small value type, so this is a plain struct copy followed by in-place
// edits to the copy — cheaper and safer than a make/unmake pair with a
// hand-maintained undo stack.
func (p *Position) Make(m Move) Position {
	next := *p
	us := p.SideToMove()
	them := us.Other()

	next.Pieces[us][m.Piece].Clear(m.From)

	if m.Captured != NoPiece {
		if m.Flag == FlagEnPassant {
			capturedSq := m.To
			if us == White {
				capturedSq = Square(int(m.To) - 8)
			} else {
				capturedSq = Square(int(m.To) + 8)
			}
			next.Pieces[them][Pawn].Clear(capturedSq)
		} else {
			next.Pieces[them][m.Captured].Clear(m.To)
		}
	}

	if m.Promotion != NoPiece {
		next.Pieces[us][m.Promotion].Set(m.To)
	} else {
		next.Pieces[us][m.Piece].Set(m.To)
	}

	if m.Flag == FlagCastleKingside || m.Flag == FlagCastleQueenside {
		rank := 0
		if us == Black {
			rank = 7
		}
		if m.Flag == FlagCastleKingside {
			next.Pieces[us][Rook].Clear(SquareOf(7, rank))
			next.Pieces[us][Rook].Set(SquareOf(5, rank))
		} else {
			next.Pieces[us][Rook].Clear(SquareOf(0, rank))
			next.Pieces[us][Rook].Set(SquareOf(3, rank))
		}
	}

	next.Castling = updateCastlingRights(p.Castling, m)

	next.EnPassant = NoSquare
	if m.Flag == FlagDoublePush {
		mid := (int(m.From) + int(m.To)) / 2
		next.EnPassant = Square(mid)
	}

	if m.Piece == Pawn || m.Captured != NoPiece {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if us == Black {
		next.FullmoveNumber++
	}

	next.WhiteToMove = !p.WhiteToMove

	return next
}

func updateCastlingRights(rights uint8, m Move) uint8 {
	clear := func(sq Square, mask uint8) uint8 {
		if m.From == sq || m.To == sq {
			return rights &^ mask
		}
		return rights
	}

	if m.Piece == King {
		if m.From == SquareOf(4, 0) {
			rights &^= CastleWhiteKingside | CastleWhiteQueenside
		} else if m.From == SquareOf(4, 7) {
			rights &^= CastleBlackKingside | CastleBlackQueenside
		}
	}

	rights = clear(SquareOf(0, 0), CastleWhiteQueenside)
	rights = clear(SquareOf(7, 0), CastleWhiteKingside)
	rights = clear(SquareOf(0, 7), CastleBlackQueenside)
	rights = clear(SquareOf(7, 7), CastleBlackKingside)

	return rights
}

package board

import (
	"fmt"
	"strconv"
	"strings"
)

var fenPieceLetter = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses Forsyth-Edwards Notation into a Position.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("board: malformed FEN %q: expected at least 4 fields, got %d", fen, len(fields))
	}

	var pos Position
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("board: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				lower := byte(ch)
				if lower >= 'A' && lower <= 'Z' {
					lower = lower - 'A' + 'a'
				}
				pt, ok := fenPieceLetter[lower]
				if !ok {
					return Position{}, fmt.Errorf("board: malformed FEN %q: unknown piece %q", fen, ch)
				}
				if file > 7 {
					return Position{}, fmt.Errorf("board: malformed FEN %q: rank %d overflows", fen, i)
				}
				color := White
				if byte(ch) == lower {
					color = Black
				}
				pos.Pieces[color][pt].Set(SquareOf(file, rank))
				file++
			}
		}
	}

	pos.WhiteToMove = fields[1] == "w"

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			pos.Castling |= CastleWhiteKingside
		case 'Q':
			pos.Castling |= CastleWhiteQueenside
		case 'k':
			pos.Castling |= CastleBlackKingside
		case 'q':
			pos.Castling |= CastleBlackQueenside
		}
	}

	pos.EnPassant = NoSquare
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return Position{}, fmt.Errorf("board: malformed FEN %q: bad en passant square %q", fen, fields[3])
		}
		pos.EnPassant = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, fmt.Errorf("board: malformed FEN %q: bad halfmove clock: %w", fen, err)
		}
		pos.HalfmoveClock = uint8(n)
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, fmt.Errorf("board: malformed FEN %q: bad fullmove number: %w", fen, err)
		}
		pos.FullmoveNumber = uint16(n)
	} else {
		pos.FullmoveNumber = 1
	}

	return pos, nil
}

// MustParseFEN parses fen and panics on error; intended for known-good
// constants such as board.InitialPosition.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

var pieceLetterUpper = map[PieceType]string{
	Pawn: "P", Knight: "N", Bishop: "B", Rook: "R", Queen: "Q", King: "K",
}

// ToFEN serializes the position back to Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			pt, color, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceLetterUpper[pt]
			if color == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	if p.WhiteToMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}

	sb.WriteString(" ")
	castling := ""
	if p.Castling&CastleWhiteKingside != 0 {
		castling += "K"
	}
	if p.Castling&CastleWhiteQueenside != 0 {
		castling += "Q"
	}
	if p.Castling&CastleBlackKingside != 0 {
		castling += "k"
	}
	if p.Castling&CastleBlackQueenside != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteString(" ")
	if p.EnPassant == NoSquare {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.EnPassant.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}

package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return NewPiece(Pawn, White)
	case 'N':
		return NewPiece(Knight, White)
	case 'B':
		return NewPiece(Bishop, White)
	case 'R':
		return NewPiece(Rook, White)
	case 'Q':
		return NewPiece(Queen, White)
	case 'K':
		return NewPiece(King, White)
	case 'p':
		return NewPiece(Pawn, Black)
	case 'n':
		return NewPiece(Knight, Black)
	case 'b':
		return NewPiece(Bishop, Black)
	case 'r':
		return NewPiece(Rook, Black)
	case 'q':
		return NewPiece(Queen, Black)
	case 'k':
		return NewPiece(King, Black)
	default:
		return NoPiece
	}
}

func charFromPiece(p Piece) byte {
	letter := pieceLetters[p.Kind()]
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ParseFEN parses a FEN string into a new Position. Parsing is lenient, per
// this engine's error-handling philosophy: unrecognised placement
// characters are simply skipped rather than rejected, and missing
// side-to-move, castling, en-passant, halfmove, or fullmove fields fall
// back to sensible defaults instead of producing an error. An error is
// only returned when the piece-placement field itself can't be split into
// eight ranks, since there is no reasonable default board to fall back to.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	pos := &Position{epSquare: NoSquare, fullmoveNumber: 1}

	if len(fields) == 0 {
		return nil, errInvalidFEN("empty FEN")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errInvalidFEN("piece placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				continue // lenient: skip unrecognised characters
			}
			sq := Square(rankIndex*8 + file)
			pos.addPiece(p.Colour(), p.Kind(), sq)
			file++
		}
	}

	pos.sideToMove = White
	if len(fields) > 1 && fields[1] == "b" {
		pos.sideToMove = Black
	}

	if len(fields) > 2 && fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.castling |= WhiteKingside
			case 'Q':
				pos.castling |= WhiteQueenside
			case 'k':
				pos.castling |= BlackKingside
			case 'q':
				pos.castling |= BlackQueenside
			}
		}
	}

	pos.epSquare = NoSquare
	if len(fields) > 3 && len(fields[3]) == 2 {
		f := fields[3][0]
		r := fields[3][1]
		if f >= 'a' && f <= 'h' && r >= '1' && r <= '8' {
			pos.epSquare = Square(int(r-'1')*8 + int(f-'a'))
		}
	}

	pos.halfmoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			pos.halfmoveClock = n
		}
	}

	pos.fullmoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			pos.fullmoveNumber = n
		}
	}

	pos.hash = pos.computeZobrist()
	return pos, nil
}

type fenError string

func (e fenError) Error() string { return "board: invalid FEN: " + string(e) }

func errInvalidFEN(msg string) error { return fenError(msg) }

// ToFEN renders pos as a FEN string.
func (pos *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := pos.mailbox[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if pos.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if pos.castling == 0 {
		sb.WriteByte('-')
	} else {
		if pos.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if pos.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if pos.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if pos.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if pos.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('a' + byte(pos.epSquare.File()))
		sb.WriteByte('1' + byte(pos.epSquare.Rank()))
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(pos.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.fullmoveNumber))

	return sb.String()
}

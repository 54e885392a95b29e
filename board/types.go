// Package board implements chess position representation, move encoding,
// attack generation, and legal move generation.
package board

// Square identifies one of the 64 board squares, a1=0 through h8=63.
type Square int8

// NoSquare is the sentinel used for "no en passant target" and similar cases.
const NoSquare Square = -1

// File returns the file (0=a .. 7=h) of the square.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank (0=1st .. 7=8th) of the square.
func (s Square) Rank() int { return int(s) / 8 }

// Bitboard is a 64-bit set of squares; bit i corresponds to Square(i).
type Bitboard uint64

// Bit returns the bitboard containing only sq.
func Bit(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// Kind is the colourless type of a chess piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Colour is one side in the game.
type Colour uint8

const (
	White Colour = iota
	Black
)

// Other returns the opposing colour.
func (c Colour) Other() Colour { return c ^ 1 }

// Piece packs a Kind and a Colour into a single byte: bits 0-2 hold the
// kind, bit 3 holds the colour. NoPiece is the zero value.
type Piece uint8

const NoPiece Piece = 0

// NewPiece builds a Piece from a kind and colour. NoKind always yields NoPiece.
func NewPiece(k Kind, c Colour) Piece {
	if k == NoKind {
		return NoPiece
	}
	return Piece(k) | Piece(c)<<3
}

// Kind returns the colourless kind of the piece.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Colour returns the owning side of the piece. Meaningless for NoPiece.
func (p Piece) Colour() Colour { return Colour((p >> 3) & 1) }

// CastlingRights is a bitmask of the four castling privileges.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// pieceLetters maps a Kind to its uppercase FEN letter, indexed by Kind.
var pieceLetters = [7]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

package board

// Move packs a single chess move into 32 bits using a layout that keeps
// every field non-overlapping (the original engine this was ported from
// let the promotion and flag fields share bits, which corrupted promotion
// moves with a castling or en passant flag set; this layout widens the
// flag field so that can't happen):
//
//	bits 0..5   from square
//	bits 6..11  to square
//	bits 12..14 moving piece kind
//	bits 15..17 captured piece kind (NoKind if none)
//	bits 18..20 promotion piece kind (NoKind if none)
//	bits 21..24 flags
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 15
	movePromoShift   = 18
	moveFlagShift    = 21

	moveSquareMask = 0x3F
	moveKindMask   = 0x7
	moveFlagMask   = 0xF
)

// Flag bits, stored in Move bits 21..24.
const (
	FlagNone       = 0
	FlagCastleK    = 1 << 0
	FlagCastleQ    = 1 << 1
	FlagEnPassant  = 1 << 2
	FlagPromotion  = 1 << 3
)

// NewMove packs a move's fields into a Move value.
func NewMove(from, to Square, piece, captured, promotion Kind, flags uint32) Move {
	m := uint32(from)&moveSquareMask<<moveFromShift |
		uint32(to)&moveSquareMask<<moveToShift |
		uint32(piece)&moveKindMask<<movePieceShift |
		uint32(captured)&moveKindMask<<moveCaptureShift |
		uint32(promotion)&moveKindMask<<movePromoShift |
		flags&moveFlagMask<<moveFlagShift
	return Move(m)
}

// From returns the move's origin square.
func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & moveSquareMask) }

// To returns the move's destination square.
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & moveSquareMask) }

// Piece returns the kind of the piece that is moving.
func (m Move) Piece() Kind { return Kind(uint32(m) >> movePieceShift & moveKindMask) }

// Captured returns the kind of the captured piece, or NoKind.
func (m Move) Captured() Kind { return Kind(uint32(m) >> moveCaptureShift & moveKindMask) }

// Promotion returns the promotion piece kind, or NoKind if this isn't a promotion.
func (m Move) Promotion() Kind { return Kind(uint32(m) >> movePromoShift & moveKindMask) }

// Flags returns the raw flag bits.
func (m Move) Flags() uint32 { return uint32(m) >> moveFlagShift & moveFlagMask }

// IsCapture reports whether the move captures a piece (en passant included).
func (m Move) IsCapture() bool { return m.Captured() != NoKind }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flags()&FlagPromotion != 0 }

// IsCastling reports whether the move is a castle, either side.
func (m Move) IsCastling() bool { return m.Flags()&(FlagCastleK|FlagCastleQ) != 0 }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }

// String renders the move in UCI long algebraic notation, e.g. "e2e4" or
// "a7a8q" for a queen promotion.
func (m Move) String() string {
	if m == 0 {
		return "0000"
	}
	buf := make([]byte, 0, 5)
	buf = appendSquare(buf, m.From())
	buf = appendSquare(buf, m.To())
	if m.IsPromotion() {
		buf = append(buf, promotionLetter(m.Promotion()))
	}
	return string(buf)
}

func appendSquare(buf []byte, sq Square) []byte {
	return append(buf, byte('a'+sq.File()), byte('1'+sq.Rank()))
}

func promotionLetter(k Kind) byte {
	switch k {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return '?'
	}
}

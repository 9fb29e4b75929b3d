package hexmg

// Move packs a move into a uint32:
//
//	bits 0-6   origin square
//	bits 7-13  target square
//	bits 14-17 promotion piece type (PieceTypeNone when not promoting)
//	bits 18-19 flag
//
// Captured pieces are not part of the encoding; they travel in the MoveState
// undo token instead.
type Move uint32

const (
	FlagNone uint32 = 0
	// FlagEnPassant marks a pawn capture whose victim is not on the target
	// cell but one forward stride behind it.
	FlagEnPassant uint32 = 1
	// FlagDoubleAdvance marks a two-stride pawn advance, which opens an
	// en-passant window on the skipped cell.
	FlagDoubleAdvance uint32 = 2
)

const (
	moveFromShift  = 0
	moveToShift    = 7
	movePromoShift = 14
	moveFlagShift  = 18

	squareMask = 0x7f
	promoMask  = 0xf
	flagMask   = 0x3
)

// NewMove builds a move from its parts.
func NewMove(from, to Square, promo PieceType, flag uint32) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo)<<movePromoShift |
		flag<<moveFlagShift)
}

// From is the origin square.
func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & squareMask) }

// To is the target square.
func (m Move) To() Square { return Square(uint32(m) >> moveToShift & squareMask) }

// PromotionPieceType is the chosen promotion piece, or PieceTypeNone.
func (m Move) PromotionPieceType() PieceType {
	return PieceType(uint32(m) >> movePromoShift & promoMask)
}

// Flag returns the move flag bits.
func (m Move) Flag() uint32 { return uint32(m) >> moveFlagShift & flagMask }

// IsEnPassant reports an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsDoubleAdvance reports a two-stride pawn advance.
func (m Move) IsDoubleAdvance() bool { return m.Flag() == FlagDoubleAdvance }

func (m Move) String() string {
	s := posOf(m.From()).String() + posOf(m.To()).String()
	if pt := m.PromotionPieceType(); pt != PieceTypeNone {
		s += "=" + string(pieceLetters[pt])
	}
	return s
}

// MoveState is the undo token returned by MakeMove and consumed by
// UnmakeMove. It captures everything a move destroys that the move itself
// cannot reconstruct.
type MoveState struct {
	Captured        Piece
	CapturedSquare  Square
	EnPassantSquare Square
	HalfmoveClock   int
	ZobristKey      uint64
}

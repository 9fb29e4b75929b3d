package hexmg

// MakeMove plays a pseudo-legal move. It returns false (with the board fully
// restored) when the move would leave the mover's own king attacked;
// otherwise it returns true plus the undo token for UnmakeMove.
func (b *Board) MakeMove(m Move) (bool, MoveState) {
	st := MoveState{
		Captured:        NoPiece,
		CapturedSquare:  NoSquare,
		EnPassantSquare: b.enPassantSquare,
		HalfmoveClock:   b.halfmoveClock,
		ZobristKey:      b.zobristKey,
	}

	from, to := m.From(), m.To()
	moving := b.pieces[from]
	us := moving.Color()

	if m.IsEnPassant() {
		// The captured pawn sits one forward stride (from the capturer's
		// point of view) behind the target cell.
		dir := us.direction()
		capSq := squareOf(posOf(to).Add(Delta{-dir, -dir}))
		st.Captured = b.removePiece(capSq)
		st.CapturedSquare = capSq
	} else if b.pieces[to] != NoPiece {
		st.Captured = b.removePiece(to)
		st.CapturedSquare = to
	}

	b.removePiece(from)
	placed := moving
	if promo := m.PromotionPieceType(); promo != PieceTypeNone {
		placed = PieceFromType(us, promo)
	}
	b.addPiece(to, placed)

	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[posOf(b.enPassantSquare).File()]
	}
	b.enPassantSquare = NoSquare
	if m.IsDoubleAdvance() {
		dir := us.direction()
		b.enPassantSquare = squareOf(posOf(from).Add(Delta{dir, dir}))
		b.zobristKey ^= zobristEnPassant[posOf(b.enPassantSquare).File()]
	}

	if moving.Type() == PieceTypePawn || st.Captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide

	if b.InCheck(us) {
		b.UnmakeMove(m, st)
		return false, MoveState{}
	}
	return true, st
}

// UnmakeMove reverses a move made with MakeMove, given its undo token.
// Tokens must be popped in reverse order of their moves.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	from, to := m.From(), m.To()
	placed := b.pieces[to]

	b.removePiece(to)
	moving := placed
	if m.PromotionPieceType() != PieceTypeNone {
		moving = PieceFromType(placed.Color(), PieceTypePawn)
	}
	b.addPiece(from, moving)

	if st.Captured != NoPiece {
		b.addPiece(st.CapturedSquare, st.Captured)
	}

	if moving.Color() == Black {
		b.fullmoveNumber--
	}
	b.sideToMove = b.sideToMove.Other()
	b.enPassantSquare = st.EnPassantSquare
	b.halfmoveClock = st.HalfmoveClock
	b.zobristKey = st.ZobristKey
}

// NullState is the undo token for a null move.
type NullState struct {
	EnPassantSquare Square
	ZobristKey      uint64
}

// ApplyNullMove passes the turn without moving, for null-move pruning. The
// en-passant window closes since the opponent can no longer use it.
func (b *Board) ApplyNullMove() NullState {
	st := NullState{EnPassantSquare: b.enPassantSquare, ZobristKey: b.zobristKey}
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[posOf(b.enPassantSquare).File()]
		b.enPassantSquare = NoSquare
	}
	b.sideToMove = b.sideToMove.Other()
	b.zobristKey ^= zobristSide
	return st
}

// UnapplyNullMove reverses ApplyNullMove.
func (b *Board) UnapplyNullMove(st NullState) {
	b.sideToMove = b.sideToMove.Other()
	b.enPassantSquare = st.EnPassantSquare
	b.zobristKey = st.ZobristKey
}

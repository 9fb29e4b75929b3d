package hexmg

// Piece encodes a piece together with its side.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless piece kind used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// direction is the sign of the side's pawn advance: +1 for White, -1 for
// Black. A pawn's forward stride is direction*(1,1).
func (c Color) direction() int8 {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

var pieceLetters = [7]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	ch := pieceLetters[p.Type()]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return string(ch)
}

// Board is the full game state: a 91-cell mailbox indexed by Square, the
// side to move, the en-passant target, and the move counters. State is
// mutated only through MakeMove/UnmakeMove (or SetPiece during position
// setup); the invariants are one king per side and every occupied cell valid
// by construction of the index.
type Board struct {
	pieces [NumberOfTiles]Piece

	// Cached king squares, kept in sync by SetPiece and make/unmake.
	kings [2]Square

	sideToMove Color

	// The cell a pawn skipped with its last double advance, or NoSquare.
	enPassantSquare Square

	// Half-moves since the last capture or pawn advance, for the fifty-move rule.
	halfmoveClock int

	// Starts at 1, incremented after Black's move.
	fullmoveNumber int

	zobristKey uint64
}

// NewBareBoard returns an empty board with White to move, for position setup.
func NewBareBoard() *Board {
	return &Board{
		kings:           [2]Square{NoSquare, NoSquare},
		enPassantSquare: NoSquare,
		fullmoveNumber:  1,
	}
}

// At returns the piece on a cell, or ErrOutOfRange for an invalid coordinate.
func (b *Board) At(p Pos) (Piece, error) {
	sq, err := IndexOf(p)
	if err != nil {
		return NoPiece, err
	}
	return b.pieces[sq], nil
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove updates the side to play. Normal move making toggles it
// automatically; this is for position setup.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove == c {
		return
	}
	b.sideToMove = c
	b.zobristKey ^= zobristSide
}

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// EnPassantSquare returns the current en-passant target cell or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// KingSquare returns the cached square of the given side's king, or NoSquare
// on a bare board.
func (b *Board) KingSquare(c Color) Square { return b.kings[c] }

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// SetPiece places a piece on a square, replacing any existing piece, and
// keeps the king cache and Zobrist key in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[sq] = p
	if p.Type() == PieceTypeKing {
		b.kings[p.Color()] = sq
	}
	b.zobristKey ^= zobristPiece[p][sq]
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	b.pieces[sq] = NoPiece
	if p.Type() == PieceTypeKing && b.kings[p.Color()] == sq {
		b.kings[p.Color()] = NoSquare
	}
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	moves := b.GeneratePseudoMoves()
	for _, m := range moves {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ksq := b.kings[c]
	if ksq == NoSquare {
		return false
	}
	return b.isSquareAttacked(ksq, c.Other())
}

// OurKingInCheck reports whether the side to move is in check.
func (b *Board) OurKingInCheck() bool { return b.InCheck(b.sideToMove) }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.OurKingInCheck() && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move has no legal moves but is not
// in check.
func (b *Board) InStalemate() bool {
	return !b.OurKingInCheck() && !b.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move rule draw (the clock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition reports a draw by threefold repetition based on the
// provided history of Zobrist keys. The current position counts as one
// occurrence; if the key appears twice more in the history, it returns true.
// The Zobrist key already encodes side to move and the en-passant file, which
// the repetition rule requires.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	target := b.zobristKey
	end := len(history)
	// Do not double-count if the last history entry is the current position.
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// ApplyMove plays a user-supplied move given as origin and target cells. The
// move must match a legal move; promotion defaults to queen when promo is
// PieceTypeNone. Returns the resolved move, or ErrOutOfRange/ErrIllegalMove.
func (b *Board) ApplyMove(from, to Pos, promo PieceType) (Move, error) {
	fromSq, err := IndexOf(from)
	if err != nil {
		return 0, err
	}
	toSq, err := IndexOf(to)
	if err != nil {
		return 0, err
	}

	var chosen Move
	for _, m := range b.GenerateMoves() {
		if m.From() != fromSq || m.To() != toSq {
			continue
		}
		pt := m.PromotionPieceType()
		if pt == PieceTypeNone || pt == promo || (promo == PieceTypeNone && pt == PieceTypeQueen) {
			chosen = m
			break
		}
	}
	if chosen == 0 {
		return 0, ErrIllegalMove
	}
	ok, _ := b.MakeMove(chosen)
	if !ok {
		// GenerateMoves already filtered for legality.
		panic("hexmg: generated move rejected by MakeMove")
	}
	return chosen, nil
}

// String renders the board rank by rank (rank 20 first), mainly for debugging
// and CLI display.
func (b *Board) String() string {
	var out []byte
	for rank := MaxRank; rank >= 0; rank-- {
		pad := NumberOfFiles - RankWidth(rank)
		for i := 0; i < pad; i++ {
			out = append(out, ' ')
		}
		minY := minRankY(rank)
		for y := minY; y < minY+RankWidth(rank); y++ {
			p := Pos{int8(rank - y), int8(y)}
			sq := squareOf(p)
			out = append(out, b.pieces[sq].String()[0], ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}

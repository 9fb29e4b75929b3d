package hexmg

import (
	"math/rand"
	"testing"
)

func TestInitialMoveCount(t *testing.T) {
	b := NewBoard()
	moves := b.GenerateMoves()

	perType := make(map[PieceType]int)
	for _, m := range moves {
		perType[b.PieceAt(m.From()).Type()]++
	}
	t.Logf("initial moves: pawn=%d knight=%d bishop=%d rook=%d queen=%d king=%d",
		perType[PieceTypePawn], perType[PieceTypeKnight], perType[PieceTypeBishop],
		perType[PieceTypeRook], perType[PieceTypeQueen], perType[PieceTypeKing])

	// 17 pawn moves: nine single advances plus eight doubles. The ninth
	// double, (4,4) to (6,6), is blocked by the black pawn sitting there.
	want := map[PieceType]int{
		PieceTypePawn:   17,
		PieceTypeKnight: 8,
		PieceTypeBishop: 12,
		PieceTypeRook:   6,
		PieceTypeQueen:  6,
		PieceTypeKing:   2,
	}
	for pt, n := range want {
		if perType[pt] != n {
			t.Errorf("piece type %d: %d moves, want %d", pt, perType[pt], n)
		}
	}
	if len(moves) != 51 {
		t.Fatalf("initial position: %d legal moves, want 51", len(moves))
	}

	blocked := mustSquare(t, Pos{6, 6})
	for _, m := range moves {
		if m.From() == mustSquare(t, Pos{4, 4}) && m.To() == blocked {
			t.Fatalf("double advance onto the occupied (6,6) generated")
		}
	}
}

// The legality filter must never emit a move that leaves the mover's own
// king attacked, at any point of a random game.
func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := NewBoard()
	for ply := 0; ply < 200; ply++ {
		moves := b.GenerateMoves()
		if len(moves) == 0 {
			break
		}
		mover := b.SideToMove()
		for _, m := range moves {
			ok, st := b.MakeMove(m)
			if !ok {
				t.Fatalf("ply %d: GenerateMoves emitted %v but MakeMove rejects it", ply, m)
			}
			if b.InCheck(mover) {
				t.Fatalf("ply %d: move %v leaves %v's king in check", ply, m, mover)
			}
			b.UnmakeMove(m, st)
		}
		m := moves[rng.Intn(len(moves))]
		b.MakeMove(m)
	}
}

func TestPawnDoubleAdvanceAndEnPassant(t *testing.T) {
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{0, 1}), WhiteKing)
	b.SetPiece(mustSquare(t, Pos{10, 9}), BlackKing)
	b.SetPiece(mustSquare(t, Pos{5, 4}), WhitePawn)
	b.SetPiece(mustSquare(t, Pos{6, 6}), BlackPawn)
	b.SetSideToMove(Black)

	if _, err := b.ApplyMove(Pos{6, 6}, Pos{4, 4}, PieceTypeNone); err != nil {
		t.Fatalf("black double advance: %v", err)
	}
	if got := b.EnPassantSquare(); got != mustSquare(t, Pos{5, 5}) {
		t.Fatalf("en-passant square after double advance: %d", got)
	}

	var ep Move
	for _, m := range b.GenerateMoves() {
		if m.IsEnPassant() {
			ep = m
		}
	}
	if ep == 0 {
		t.Fatalf("no en-passant capture generated; moves: %v", b.GenerateMoves())
	}
	if ep.From() != mustSquare(t, Pos{5, 4}) || ep.To() != mustSquare(t, Pos{5, 5}) {
		t.Fatalf("en-passant capture = %v, want (5,4)(5,5)", ep)
	}

	ok, _ := b.MakeMove(ep)
	if !ok {
		t.Fatalf("en-passant capture rejected")
	}
	if p, _ := b.At(Pos{4, 4}); p != NoPiece {
		t.Fatalf("captured pawn still on (4,4): %v", p)
	}
	if p, _ := b.At(Pos{5, 5}); p != WhitePawn {
		t.Fatalf("capturing pawn not on (5,5): %v", p)
	}
}

func TestEnPassantWindowCloses(t *testing.T) {
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{0, 1}), WhiteKing)
	b.SetPiece(mustSquare(t, Pos{10, 9}), BlackKing)
	b.SetPiece(mustSquare(t, Pos{5, 4}), WhitePawn)
	b.SetPiece(mustSquare(t, Pos{6, 6}), BlackPawn)
	b.SetSideToMove(Black)

	if _, err := b.ApplyMove(Pos{6, 6}, Pos{4, 4}, PieceTypeNone); err != nil {
		t.Fatalf("double advance: %v", err)
	}
	// White plays something else; the window must close.
	if _, err := b.ApplyMove(Pos{0, 1}, Pos{1, 2}, PieceTypeNone); err != nil {
		t.Fatalf("king move: %v", err)
	}
	if _, err := b.ApplyMove(Pos{10, 9}, Pos{10, 8}, PieceTypeNone); err != nil {
		t.Fatalf("black king move: %v", err)
	}
	for _, m := range b.GenerateMoves() {
		if m.IsEnPassant() {
			t.Fatalf("en-passant still available one full move later: %v", m)
		}
	}
}

func TestPromotion(t *testing.T) {
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{0, 1}), WhiteKing)
	b.SetPiece(mustSquare(t, Pos{5, 0}), BlackKing)
	b.SetPiece(mustSquare(t, Pos{9, 9}), WhitePawn)

	promos := 0
	for _, m := range b.GenerateMoves() {
		if m.PromotionPieceType() != PieceTypeNone {
			promos++
		}
	}
	if promos != 4 {
		t.Fatalf("promotion choices: %d, want 4", promos)
	}

	// PieceTypeNone defaults to queen.
	if _, err := b.ApplyMove(Pos{9, 9}, Pos{10, 10}, PieceTypeNone); err != nil {
		t.Fatalf("promotion move: %v", err)
	}
	if p, _ := b.At(Pos{10, 10}); p != WhiteQueen {
		t.Fatalf("promoted piece: %v, want white queen", p)
	}
}

func TestCheckmateDetection(t *testing.T) {
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{10, 10}), BlackKing)
	b.SetPiece(mustSquare(t, Pos{9, 9}), WhiteQueen)
	b.SetPiece(mustSquare(t, Pos{8, 7}), WhiteKing)
	b.SetSideToMove(Black)

	if !b.OurKingInCheck() {
		t.Fatalf("black king should be in check")
	}
	if !b.InCheckmate() {
		t.Fatalf("position should be checkmate; moves: %v", b.GenerateMoves())
	}
	if b.InStalemate() {
		t.Fatalf("checkmate misreported as stalemate")
	}
}

func TestStalemateDetection(t *testing.T) {
	// Black king on the (0,0) corner. The queen on (1,3) covers four of
	// its five escape cells: (1,2), (1,1), (1,0) down its rook ray and
	// (0,1) one bishop step away. The fifth, (2,1), is a knight's jump
	// from the queen and out of her reach, so the white king on (3,2)
	// covers it instead. Neither white piece checks the corner or sits
	// within the black king's reach.
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{0, 0}), BlackKing)
	b.SetPiece(mustSquare(t, Pos{1, 3}), WhiteQueen)
	b.SetPiece(mustSquare(t, Pos{3, 2}), WhiteKing)
	b.SetSideToMove(Black)

	if b.OurKingInCheck() {
		t.Fatalf("black king should not be in check")
	}
	if !b.InStalemate() {
		t.Fatalf("position should be stalemate; moves: %v", b.GenerateMoves())
	}
}

func mustSquare(t *testing.T, p Pos) Square {
	t.Helper()
	sq, err := IndexOf(p)
	if err != nil {
		t.Fatalf("IndexOf(%v): %v", p, err)
	}
	return sq
}

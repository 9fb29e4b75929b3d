package game

import (
	"errors"
	"testing"

	"hexchess-engine/hexmg"
)

func TestRecordRoundTrip(t *testing.T) {
	b := hexmg.NewBoard()
	for _, m := range b.GenerateMoves() {
		rec := EncodeMove(m)
		back, err := DecodeMove(b, rec)
		if err != nil {
			t.Fatalf("DecodeMove(%+v): %v", rec, err)
		}
		if back != m {
			t.Fatalf("round trip of %v gave %v", m, back)
		}
	}
}

func TestRecordPromotionDefaultsToQueen(t *testing.T) {
	b := hexmg.NewBareBoard()
	for _, e := range []struct {
		pos   hexmg.Pos
		piece hexmg.Piece
	}{
		{hexmg.Pos{X: 0, Y: 1}, hexmg.WhiteKing},
		{hexmg.Pos{X: 5, Y: 0}, hexmg.BlackKing},
		{hexmg.Pos{X: 9, Y: 9}, hexmg.WhitePawn},
	} {
		sq, _ := hexmg.IndexOf(e.pos)
		b.SetPiece(sq, e.piece)
	}

	// A bare 4-int record resolves to the queen promotion.
	m, err := DecodeMove(b, MoveRecord{9, 9, 10, 10, hexmg.PieceTypeNone})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.PromotionPieceType() != hexmg.PieceTypeQueen {
		t.Fatalf("promotion defaulted to %d, want queen", m.PromotionPieceType())
	}

	// The extended record keeps the chosen piece.
	m, err = DecodeMove(b, MoveRecord{9, 9, 10, 10, hexmg.PieceTypeKnight})
	if err != nil {
		t.Fatalf("decode with promotion: %v", err)
	}
	if m.PromotionPieceType() != hexmg.PieceTypeKnight {
		t.Fatalf("promotion = %d, want knight", m.PromotionPieceType())
	}
}

func TestRecordErrors(t *testing.T) {
	b := hexmg.NewBoard()

	if _, err := DecodeMove(b, MoveRecord{6, 0, 5, 5, hexmg.PieceTypeNone}); !errors.Is(err, hexmg.ErrOutOfRange) {
		t.Fatalf("off-board origin: %v", err)
	}
	if _, err := DecodeMove(b, MoveRecord{0, 1, 5, 5, hexmg.PieceTypeNone}); !errors.Is(err, hexmg.ErrIllegalMove) {
		t.Fatalf("illegal move: %v", err)
	}
}

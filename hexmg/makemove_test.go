package hexmg

import (
	"math/rand"
	"testing"
)

// Random-walk make/unmake: after unmaking, the board must be bit-identical
// to the snapshot, and after making, the incremental hash must agree with a
// from-scratch recompute.
func TestMakeUnmakeIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard()

	for ply := 0; ply < 300; ply++ {
		moves := b.GenerateMoves()
		if len(moves) == 0 {
			t.Logf("game over at ply %d", ply)
			break
		}

		snapshot := *b
		for _, m := range moves {
			ok, st := b.MakeMove(m)
			if !ok {
				t.Fatalf("ply %d: legal move %v rejected", ply, m)
			}
			if got, want := b.Hash(), ComputeZobrist(b); got != want {
				t.Fatalf("ply %d: move %v: incremental hash %#x != recomputed %#x", ply, m, got, want)
			}
			b.UnmakeMove(m, st)
			if *b != snapshot {
				t.Fatalf("ply %d: unmake of %v did not restore the board", ply, m)
			}
		}

		b.MakeMove(moves[rng.Intn(len(moves))])
	}
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// White king and rook on the same rook line as a black rook: moving the
	// rook off the line exposes the king and must be rejected with the
	// board restored.
	b := NewBareBoard()
	b.SetPiece(mustSquare(t, Pos{5, 0}), WhiteKing)
	b.SetPiece(mustSquare(t, Pos{5, 2}), WhiteRook)
	b.SetPiece(mustSquare(t, Pos{5, 7}), BlackRook)
	b.SetPiece(mustSquare(t, Pos{10, 10}), BlackKing)

	snapshot := *b
	m := NewMove(mustSquare(t, Pos{5, 2}), mustSquare(t, Pos{6, 2}), PieceTypeNone, FlagNone)
	ok, _ := b.MakeMove(m)
	if ok {
		t.Fatalf("move exposing own king was accepted")
	}
	if *b != snapshot {
		t.Fatalf("rejected move left the board modified")
	}

	// Sliding along the pin line stays legal.
	m = NewMove(mustSquare(t, Pos{5, 2}), mustSquare(t, Pos{5, 4}), PieceTypeNone, FlagNone)
	if ok, _ := b.MakeMove(m); !ok {
		t.Fatalf("move along the pin line was rejected")
	}
}

func TestHalfmoveClock(t *testing.T) {
	b := NewBoard()

	// Knight moves tick the clock up.
	if _, err := b.ApplyMove(Pos{0, 2}, Pos{3, 3}, PieceTypeNone); err != nil {
		t.Fatalf("knight move: %v", err)
	}
	if _, err := b.ApplyMove(Pos{10, 8}, Pos{7, 7}, PieceTypeNone); err != nil {
		t.Fatalf("black knight move: %v", err)
	}
	if got := b.HalfmoveClock(); got != 2 {
		t.Fatalf("halfmove clock after two knight moves: %d, want 2", got)
	}

	// A pawn advance resets it.
	if _, err := b.ApplyMove(Pos{4, 2}, Pos{5, 3}, PieceTypeNone); err != nil {
		t.Fatalf("pawn move: %v", err)
	}
	if got := b.HalfmoveClock(); got != 0 {
		t.Fatalf("halfmove clock after pawn move: %d, want 0", got)
	}
	if got := b.FullmoveNumber(); got != 2 {
		t.Fatalf("fullmove number: %d, want 2", got)
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	b.ApplyMove(Pos{4, 2}, Pos{6, 4}, PieceTypeNone) // opens an en-passant window

	snapshot := *b
	st := b.ApplyNullMove()
	if b.SideToMove() != White {
		t.Fatalf("null move did not flip side to move")
	}
	if b.EnPassantSquare() != NoSquare {
		t.Fatalf("null move kept the en-passant window open")
	}
	b.UnapplyNullMove(st)
	if *b != snapshot {
		t.Fatalf("null move round trip did not restore the board")
	}
}

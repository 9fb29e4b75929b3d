package hexmg

import "math/rand"

// Zobrist tables. Piece placement keys are indexed by the raw Piece encoding
// so white and black pieces land in distinct rows; en passant is hashed by
// file since two squares on the same file can never both be en-passant
// targets for the same mover.
var (
	zobristPiece     [15][NumberOfTiles]uint64
	zobristEnPassant [NumberOfFiles]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so hashes are stable across runs and processes.
	rng := rand.New(rand.NewSource(0x6865786d67))
	for p := WhitePawn; p <= BlackKing; p++ {
		if p.Type() == PieceTypeNone || PieceType(p&7) > PieceTypeKing {
			continue
		}
		for sq := 0; sq < NumberOfTiles; sq++ {
			zobristPiece[p][sq] = rng.Uint64()
		}
	}
	for f := 0; f < NumberOfFiles; f++ {
		zobristEnPassant[f] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// ComputeZobrist rebuilds the hash key from scratch. MakeMove/UnmakeMove
// update the key incrementally; this is the reference the increments must
// agree with.
func ComputeZobrist(b *Board) uint64 {
	var key uint64
	for sq := Square(0); sq < NumberOfTiles; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[posOf(b.enPassantSquare).File()]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}

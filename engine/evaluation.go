package engine

import (
	"hexchess-engine/hexmg"
)

// PieceValue in centipawns, indexed by PieceType. The bishop sits slightly
// below the knight: its six strides only ever reach a third of the board.
var PieceValue = [7]int32{0, 100, 300, 280, 480, 900, 0}

// centralityWeight scales the per-piece bonus for standing close to the
// central cell. Kings get nothing; king safety is the search's problem.
var centralityWeight = [7]int32{0, 0, 5, 4, 3, 2, 0}

const pawnAdvanceWeight int32 = 2

var boardCenter = hexmg.Pos{X: 5, Y: 5}

// Evaluation scores the position from the side to move's point of view:
// material, centrality, and pawn advancement. The terms are computed
// identically for both colors (advancement measured toward each side's own
// promotion edge), so the score is antisymmetric under swapping colors.
func Evaluation(b *hexmg.Board) int32 {
	var scores [2]int32

	for sq := hexmg.Square(0); sq < hexmg.NumberOfTiles; sq++ {
		p := b.PieceAt(sq)
		if p == hexmg.NoPiece {
			continue
		}
		pt := p.Type()
		color := p.Color()
		pos, _ := hexmg.PosOf(sq)

		score := PieceValue[pt]

		if w := centralityWeight[pt]; w > 0 {
			dist := int32(hexmg.Distance(pos, boardCenter))
			score += Clamp(5-dist, 0, 5) * w
		}

		if pt == hexmg.PieceTypePawn {
			progress := int32(pos.Rank())
			if color == hexmg.Black {
				progress = int32(hexmg.MaxRank) - progress
			}
			score += progress * pawnAdvanceWeight
		}

		scores[color] += score
	}

	us := b.SideToMove()
	return scores[us] - scores[us.Other()]
}

// hasNonPawnMaterial reports whether the given side still has a piece other
// than pawns and the king. Null-move pruning is unsound without one.
func hasNonPawnMaterial(b *hexmg.Board, c hexmg.Color) bool {
	for sq := hexmg.Square(0); sq < hexmg.NumberOfTiles; sq++ {
		p := b.PieceAt(sq)
		if p == hexmg.NoPiece || p.Color() != c {
			continue
		}
		switch p.Type() {
		case hexmg.PieceTypeKnight, hexmg.PieceTypeBishop, hexmg.PieceTypeRook, hexmg.PieceTypeQueen:
			return true
		}
	}
	return false
}

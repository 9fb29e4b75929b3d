package game

import (
	"hexchess-engine/hexmg"
)

// MoveRecord is the persisted shape of a move: the origin and target cells
// as four integers. Promotion is an optional fifth column; when a record
// without it is replayed, a promoting move defaults to queen.
type MoveRecord struct {
	OriginX   int
	OriginY   int
	TargetX   int
	TargetY   int
	Promotion hexmg.PieceType
}

// EncodeMove projects a move onto its record.
func EncodeMove(m hexmg.Move) MoveRecord {
	from, _ := hexmg.PosOf(m.From())
	to, _ := hexmg.PosOf(m.To())
	return MoveRecord{
		OriginX:   int(from.X),
		OriginY:   int(from.Y),
		TargetX:   int(to.X),
		TargetY:   int(to.Y),
		Promotion: m.PromotionPieceType(),
	}
}

// DecodeMove resolves a record back into a legal move on the given board.
// The board supplies everything the four integers do not carry: the moving
// piece, captures, and the en-passant flag. Returns hexmg.ErrOutOfRange for
// cells outside the board and hexmg.ErrIllegalMove when no legal move
// matches.
func DecodeMove(b *hexmg.Board, rec MoveRecord) (hexmg.Move, error) {
	from := hexmg.Pos{X: int8(rec.OriginX), Y: int8(rec.OriginY)}
	to := hexmg.Pos{X: int8(rec.TargetX), Y: int8(rec.TargetY)}

	fromSq, err := hexmg.IndexOf(from)
	if err != nil {
		return 0, err
	}
	toSq, err := hexmg.IndexOf(to)
	if err != nil {
		return 0, err
	}

	for _, m := range b.GenerateMoves() {
		if m.From() != fromSq || m.To() != toSq {
			continue
		}
		pt := m.PromotionPieceType()
		if pt == hexmg.PieceTypeNone || pt == rec.Promotion ||
			(rec.Promotion == hexmg.PieceTypeNone && pt == hexmg.PieceTypeQueen) {
			return m, nil
		}
	}
	return 0, hexmg.ErrIllegalMove
}

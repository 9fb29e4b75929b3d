package engine

import (
	"hexchess-engine/hexmg"
)

type move struct {
	move          hexmg.Move
	score         uint16
	capturedPiece hexmg.PieceType
}
type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]uint16 = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Move ordering offsets. The PV/TT move goes first, then promotions and
// captures, then killers, with the history score ordering the quiet rest.
var pvOffset uint16 = 25000
var promotionOffset uint16 = 20000
var captureOffset uint16 = 15000
var killerOffset uint16 = 2000

// victimType resolves what a move captures; en passant victims are not on
// the target cell.
func victimType(board *hexmg.Board, m hexmg.Move) hexmg.PieceType {
	if m.IsEnPassant() {
		return hexmg.PieceTypePawn
	}
	return board.PieceAt(m.To()).Type()
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	tempMove := moves.moves[currIndex]
	moves.moves[currIndex] = moves.moves[bestIndex]
	moves.moves[bestIndex] = tempMove
}

func scoreMovesList(board *hexmg.Board, moves []hexmg.Move, ply int8, pvMove hexmg.Move) (movesList moveList) {
	side := board.SideToMove()

	movesList.moves = make([]move, len(moves))
	for i := 0; i < len(moves); i++ {
		var m hexmg.Move = moves[i]
		var moveEval uint16 = 0
		var capturedPiece = victimType(board, m)
		var promotePiece = m.PromotionPieceType()
		var isPVMove bool = (m == pvMove)

		if isPVMove {
			moveEval = pvOffset + 1500
		} else if promotePiece != hexmg.PieceTypeNone {
			moveEval = promotionOffset + uint16(PieceValue[promotePiece])
		} else if capturedPiece != hexmg.PieceTypeNone {
			aggressor := board.PieceAt(m.From()).Type()
			moveEval = captureOffset + mvvLva[capturedPiece][aggressor]
		} else if killerMoveTable.KillerMoves[ply][0] == m {
			moveEval = killerOffset + 200
		} else if killerMoveTable.KillerMoves[ply][1] == m {
			moveEval = killerOffset
		} else {
			moveEval = uint16(historyMove[side][m.From()][m.To()])
		}

		movesList.moves[i].move = m
		movesList.moves[i].score = moveEval
		movesList.moves[i].capturedPiece = capturedPiece
	}
	return movesList
}

func scoreMovesListCaptures(board *hexmg.Board, moves []hexmg.Move, pvMove hexmg.Move) (movesList moveList, anyCaptures bool) {
	movesList.moves = make([]move, len(moves))
	var capturedMovesIndex int

	for i := 0; i < len(moves); i++ {
		m := moves[i]

		var isPromotion bool = m.PromotionPieceType() != hexmg.PieceTypeNone
		var enemyPiece = victimType(board, m)

		if enemyPiece != hexmg.PieceTypeNone || isPromotion {
			var moveEval uint16 = 0
			if m == pvMove {
				moveEval = captureOffset + 256
			} else if isPromotion {
				moveEval = captureOffset + 75
			} else {
				ourPiece := board.PieceAt(m.From()).Type()
				moveEval = mvvLva[enemyPiece][ourPiece]
			}

			movesList.moves[capturedMovesIndex].move = m
			movesList.moves[capturedMovesIndex].score = moveEval
			movesList.moves[capturedMovesIndex].capturedPiece = enemyPiece
			capturedMovesIndex++
		}
	}
	movesList.moves = movesList.moves[:capturedMovesIndex]

	return movesList, capturedMovesIndex > 0
}

package engine

import (
	"fmt"

	"hexchess-engine/hexmg"
)

const MaxDepth = 64

var nodesChecked uint64
var historyMove [2][hexmg.NumberOfTiles][hexmg.NumberOfTiles]int
var historyMaxVal = 10000 // Stay below the capture and killer offsets

// PVLine is the principal variation collected on the way back up the tree.
type PVLine struct {
	Moves []hexmg.Move
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Update the principal variation line with a new best move and the best line
// of play after it.
func (pvLine *PVLine) Update(move hexmg.Move, childPVLine PVLine) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, move)
	pvLine.Moves = append(pvLine.Moves, childPVLine.Moves...)
}

// GetPVMove returns the best move of the line, or the zero move when empty.
func (pvLine *PVLine) GetPVMove() hexmg.Move {
	if len(pvLine.Moves) == 0 {
		return 0
	}
	return pvLine.Moves[0]
}

func (pvLine PVLine) Clone() PVLine {
	return PVLine{Moves: append([]hexmg.Move(nil), pvLine.Moves...)}
}

func getPVLineString(pvLine PVLine) (theMoves string) {
	for _, move := range pvLine.Moves {
		if theMoves != "" {
			theMoves += " "
		}
		theMoves += move.String()
	}
	return theMoves
}

// Increment the history score for a quiet move that caused a beta-cutoff.
func incrementHistoryScore(side hexmg.Color, move hexmg.Move, depth int8) {
	historyMove[side][move.From()][move.To()] += int(depth) * int(depth)
	if historyMove[side][move.From()][move.To()] >= historyMaxVal {
		ageHistoryTable(side)
	}
}

// Decrement the history score for a quiet move that failed to raise alpha.
func decrementHistoryScore(side hexmg.Color, move hexmg.Move) {
	if historyMove[side][move.From()][move.To()] > 0 {
		historyMove[side][move.From()][move.To()]--
	}
}

// Age the values in the history table by halving them.
func ageHistoryTable(side hexmg.Color) {
	for sq1 := 0; sq1 < hexmg.NumberOfTiles; sq1++ {
		for sq2 := 0; sq2 < hexmg.NumberOfTiles; sq2++ {
			historyMove[side][sq1][sq2] /= 2
		}
	}
}

// Clear the values in the history table.
func clearHistoryTable() {
	for sq1 := 0; sq1 < hexmg.NumberOfTiles; sq1++ {
		for sq2 := 0; sq2 < hexmg.NumberOfTiles; sq2++ {
			historyMove[0][sq1][sq2] = 0
			historyMove[1][sq1][sq2] = 0
		}
	}
}

// getMateOrCPScore renders a score as centipawns or as a distance to mate.
func getMateOrCPScore(score int32) string {
	if score >= Checkmate {
		pliesToMate := int(MaxScore - score)
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	} else if score <= -Checkmate {
		pliesToMate := int(MaxScore + score)
		if pliesToMate < 0 {
			pliesToMate = 0
		}
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

// ResetForNewGame drops all state carried between searches.
func ResetForNewGame() {
	TT.clearTT()
	stateStack = stateStack[:0]
	clearHistoryTable()
	killerMoveTable.ClearKillers()
}

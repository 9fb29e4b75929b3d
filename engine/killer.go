package engine

import (
	"hexchess-engine/hexmg"
)

type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]hexmg.Move
}

func (k *KillerStruct) InsertKiller(move hexmg.Move, ply int8) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	var emptyMove hexmg.Move
	for ply := 0; ply < MaxDepth+1; ply++ {
		k.KillerMoves[ply][0] = emptyMove
		k.KillerMoves[ply][1] = emptyMove
	}
}

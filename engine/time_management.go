package engine

import (
	"time"

	"hexchess-engine/hexmg"
)

type TimeHandler struct {
	remainingTime    int
	increment        int
	timeForMove      time.Time
	stopSearch       bool
	isInitialized    bool
	usingCustomDepth bool
}

func (th *TimeHandler) initTimemanagement(remainingTime int, increment int, useCustomDepth bool) {
	th.remainingTime = remainingTime
	th.increment = increment
	th.stopSearch = false
	th.isInitialized = true
	th.usingCustomDepth = useCustomDepth
}

// StartTime sets the deadline for this move from the remaining time, the
// increment and a moves-left estimate derived from how much material is
// still on the board.
func (th *TimeHandler) StartTime(b *hexmg.Board) {
	th.stopSearch = false

	movesLeft := estimateMovesRemaining(piecePhase(b))

	const overheadMs = 30 // reserve for IO jitter
	const minMoveMs = 5
	const maxFrac = 0.7 // never spend more than 70% of remaining time
	const panicThreshMs = 1000
	const panicFrac = 0.90 // use 90% of the increment when nearly flagged

	rem := th.remainingTime
	inc := th.increment

	var moveTime int
	if inc > 0 {
		if rem < panicThreshMs {
			moveTime = int(float64(inc) * panicFrac)
		} else {
			moveTime = rem/movesLeft + inc
		}
	} else {
		moveTime = rem / 40
	}

	moveTime = Clamp(moveTime, minMoveMs, int(float64(rem)*maxFrac))
	moveTime = Min(moveTime, rem-overheadMs)
	moveTime = Max(moveTime, minMoveMs)

	th.timeForMove = time.Now().Add(time.Duration(moveTime) * time.Millisecond)
}

/*
	- True if we're out of time and we're not using a custom depth search
	- False if we still got time
*/
func (th *TimeHandler) TimeStatus() bool {
	return th.timeForMove.Before(time.Now()) && !th.usingCustomDepth
}

// piecePhase counts the non-pawn, non-king pieces still on the board, from 0
// (bare kings) to 16 (full armies).
func piecePhase(b *hexmg.Board) int {
	phase := 0
	for sq := hexmg.Square(0); sq < hexmg.NumberOfTiles; sq++ {
		switch b.PieceAt(sq).Type() {
		case hexmg.PieceTypeKnight, hexmg.PieceTypeBishop, hexmg.PieceTypeRook, hexmg.PieceTypeQueen:
			phase++
		}
	}
	return phase
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame).
	return (phase*25)/16 + 20
}

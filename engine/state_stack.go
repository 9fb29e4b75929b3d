package engine

import (
	"hexchess-engine/hexmg"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

var stateStack []State

// ResetStateTracking rebuilds the state stack so that it only contains the current board.
func ResetStateTracking(board *hexmg.Board) {
	stateStack = stateStack[:0]
	pushState(board)
}

// RecordState appends the board's current state to the history stack. Callers
// driving a whole game push each position so the search sees the real
// repetition history.
func RecordState(board *hexmg.Board) {
	pushState(board)
}

// ensureStateStackSynced guarantees that the top of the stack reflects the board position.
func ensureStateStackSynced(board *hexmg.Board) {
	if len(stateStack) == 0 {
		pushState(board)
		return
	}
	last := &stateStack[len(stateStack)-1]
	if last.Hash != board.Hash() {
		ResetStateTracking(board)
		return
	}
	last.Rule50 = board.HalfmoveClock()
}

func pushState(board *hexmg.Board) {
	stateStack = append(stateStack, State{
		Hash:   board.Hash(),
		Rule50: board.HalfmoveClock(),
	})
}

func popState() {
	if len(stateStack) == 0 {
		return
	}
	stateStack = stateStack[:len(stateStack)-1]
}

// isDraw reports a fifty-move or repetition draw at the top of the stack. A
// single repetition inside the search tree (past the root) already counts,
// since the side repeating could force the threefold.
func isDraw(rootIndex int) bool {
	if len(stateStack) == 0 {
		return false
	}
	curr := stateStack[len(stateStack)-1]
	if curr.Rule50 >= fiftyMoveLimit {
		return true
	}

	matchCount, firstIdx := repetitionInfo(curr.Hash, curr.Rule50)
	if matchCount >= 2 {
		return true
	}
	return matchCount >= 1 && firstIdx >= rootIndex
}

func repetitionInfo(hash uint64, rule50 int) (count int, firstIdx int) {
	firstIdx = -1
	if len(stateStack) <= 1 {
		return 0, firstIdx
	}
	start := len(stateStack) - 1 - rule50
	if start < 0 {
		start = 0
	}
	end := len(stateStack) - 2
	for i := start; i <= end; i++ {
		if stateStack[i].Hash == hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}

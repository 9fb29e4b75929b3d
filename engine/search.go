package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"hexchess-engine/hexmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// ErrNoLegalMoves reports a terminal position handed to the search.
var ErrNoLegalMoves = errors.New("engine: no legal moves")

var killerMoveTable KillerStruct
var searchShouldStop bool

var nullMoveMinDepth int8 = 3
var nullMoveReduction int8 = 2
var quiescenceMaxDepth int8 = 30

var TT TransTable
var timeHandler TimeHandler

// Config carries the per-search knobs. Either pin the depth, or leave Depth
// zero and give the clock state; the deadline is derived from remaining time
// and increment.
type Config struct {
	// Depth pins the search to a fixed depth and ignores the clock.
	Depth int
	// GameTime is the remaining time on the mover's clock, in milliseconds.
	GameTime int
	// Increment is the per-move increment, in milliseconds.
	Increment int
}

// Result is the outcome of a finished search.
type Result struct {
	Move  hexmg.Move
	Score int32
	Depth int
	Nodes uint64
}

// BestMove runs an iterative-deepening search on the board and returns the
// best move of the deepest fully completed iteration. The board is mutated
// during the search but restored before returning.
func BestMove(board *hexmg.Board, cfg Config) (Result, error) {
	legal := board.GenerateMoves()
	if len(legal) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	if !TT.isInitialized {
		TT.init()
	}
	killerMoveTable.ClearKillers()
	ensureStateStackSynced(board)

	useCustomDepth := cfg.Depth > 0
	depth := cfg.Depth
	if depth <= 0 || depth > MaxDepth {
		depth = MaxDepth
	}
	gameTime := cfg.GameTime
	if gameTime <= 0 {
		gameTime = 5000
	}
	timeHandler.initTimemanagement(gameTime, cfg.Increment, useCustomDepth)
	timeHandler.StartTime(board)

	res := rootsearch(board, int8(depth))
	if res.Move == 0 {
		// The clock expired before depth 1 completed; any legal move beats
		// forfeiting.
		res.Move = legal[0]
	}
	return res, nil
}

func rootsearch(b *hexmg.Board, depth int8) Result {
	rootIndex := len(stateStack) - 1

	var timeSpent int64
	var bestScore int32 = -MaxScore
	var pvLine PVLine
	var prevPVLine PVLine
	var completedDepth int

	for i := int8(1); i <= depth; i++ {
		pvLine.Clear()

		startTime := time.Now()
		score := alphabeta(b, -MaxScore, MaxScore, i, 0, &pvLine, false, rootIndex)
		timeSpent += time.Since(startTime).Milliseconds()

		if searchShouldStop || timeHandler.TimeStatus() {
			// Keep a partial iteration only when we have nothing better.
			if len(prevPVLine.Moves) == 0 && len(pvLine.Moves) > 0 {
				bestScore = score
				prevPVLine = pvLine.Clone()
				completedDepth = int(i)
			}
			break
		}

		bestScore = score
		prevPVLine = pvLine.Clone()
		completedDepth = int(i)

		if timeSpent == 0 {
			timeSpent = 1
		}
		nps := uint64(float64(nodesChecked*1000) / float64(timeSpent))

		log.Info().
			Int("depth", int(i)).
			Str("score", getMateOrCPScore(score)).
			Uint64("nodes", nodesChecked).
			Int64("time_ms", timeSpent).
			Uint64("nps", nps).
			Str("pv", getPVLineString(pvLine)).
			Msg("search iteration")

		// A forced mate does not get better with depth.
		if (score > Checkmate || score < -Checkmate) && len(pvLine.Moves) > 0 {
			break
		}
	}

	nodes := nodesChecked
	nodesChecked = 0
	searchShouldStop = false

	return Result{
		Move:  prevPVLine.GetPVMove(),
		Score: bestScore,
		Depth: completedDepth,
		Nodes: nodes,
	}
}

func alphabeta(b *hexmg.Board, alpha int32, beta int32, depth int8, ply int8, pvLine *PVLine, didNull bool, rootIndex int) int32 {
	nodesChecked++

	if nodesChecked&4095 == 0 {
		if timeHandler.TimeStatus() {
			searchShouldStop = true
		}
	}

	if ply >= MaxDepth {
		return Evaluation(b)
	}

	if searchShouldStop {
		return 0
	}

	var childPVLine = PVLine{}
	isPVNode := (beta - alpha) > 1
	isRoot := ply == 0

	if !isRoot && isDraw(rootIndex) {
		return DrawScore
	}

	inCheck := b.OurKingInCheck()
	if inCheck {
		depth++ // check extension
	}

	if depth <= 0 {
		return quiescence(b, alpha, beta, pvLine, quiescenceMaxDepth, ply)
	}

	var ttMove hexmg.Move
	if entry, found := TT.getEntry(b.Hash()); found {
		ttMove = entry.Move
		if !isPVNode && !isRoot {
			if usable, score := TT.useEntry(entry, b.Hash(), depth, int16(alpha), int16(beta), ply); usable {
				return int32(score)
			}
		}
	}

	// Null-move pruning: if passing the turn still busts beta, a real move
	// will too. Unsound in check and in pawn-only endings (zugzwang).
	if !isPVNode && !inCheck && !didNull && depth >= nullMoveMinDepth && hasNonPawnMaterial(b, b.SideToMove()) {
		st := b.ApplyNullMove()
		pushState(b)
		score := -alphabeta(b, -beta, -beta+1, depth-1-nullMoveReduction, ply+1, &childPVLine, true, rootIndex)
		popState()
		b.UnapplyNullMove(st)
		childPVLine.Clear()
		if searchShouldStop {
			return 0
		}
		if score >= beta && score < Checkmate {
			return beta
		}
	}

	moves := b.GeneratePseudoMoves()
	scoredMoves := scoreMovesList(b, moves, ply, ttMove)

	var bestMove hexmg.Move
	bestScore := -MaxScore
	legalMoves := 0
	ttFlag := AlphaFlag

	for index := 0; index < len(scoredMoves.moves); index++ {
		orderNextMove(index, &scoredMoves)
		m := scoredMoves.moves[index].move

		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		legalMoves++
		pushState(b)

		childPVLine.Clear()
		score := -alphabeta(b, -beta, -alpha, depth-1, ply+1, &childPVLine, false, rootIndex)

		popState()
		b.UnmakeMove(m, st)

		if searchShouldStop {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score >= beta {
			ttFlag = BetaFlag
			if scoredMoves.moves[index].capturedPiece == hexmg.PieceTypeNone {
				killerMoveTable.InsertKiller(m, ply)
				incrementHistoryScore(b.SideToMove(), m, depth)
			}
			break
		}

		if score > alpha {
			alpha = score
			ttFlag = ExactFlag
			pvLine.Update(m, childPVLine)
		} else if scoredMoves.moves[index].capturedPiece == hexmg.PieceTypeNone {
			decrementHistoryScore(b.SideToMove(), m)
		}
	}

	if legalMoves == 0 {
		if inCheck {
			// Mated; prefer the longest defense by favoring later mates.
			return -MaxScore + int32(ply)
		}
		return DrawScore // stalemate
	}

	TT.storeEntry(b.Hash(), depth, ply, bestMove, int16(bestScore), int8(ttFlag))

	return bestScore
}

func quiescence(b *hexmg.Board, alpha int32, beta int32, pvLine *PVLine, depth int8, ply int8) int32 {
	nodesChecked++

	if nodesChecked&4095 == 0 {
		if timeHandler.TimeStatus() {
			searchShouldStop = true
		}
	}

	if searchShouldStop {
		return 0
	}

	standPat := Evaluation(b)
	if ply >= MaxDepth || depth <= 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var childPVLine = PVLine{}
	captures := b.GenerateCaptures()
	scoredMoves, anyCaptures := scoreMovesListCaptures(b, captures, 0)
	if !anyCaptures {
		return alpha
	}

	for index := 0; index < len(scoredMoves.moves); index++ {
		orderNextMove(index, &scoredMoves)
		m := scoredMoves.moves[index].move

		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}

		childPVLine.Clear()
		score := -quiescence(b, -beta, -alpha, &childPVLine, depth-1, ply+1)
		b.UnmakeMove(m, st)

		if searchShouldStop {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			pvLine.Update(m, childPVLine)
		}
	}

	return alpha
}

package game

import (
	"errors"
	"sync"
	"time"

	"hexchess-engine/hexmg"
)

var (
	// ErrGameOver reports an action on a finished game.
	ErrGameOver = errors.New("game: already over")

	// ErrOutOfTime reports a move played after the mover's clock ran out.
	ErrOutOfTime = errors.New("game: out of time")

	// ErrNoDrawOffer reports accepting a draw nobody offered.
	ErrNoDrawOffer = errors.New("game: no pending draw offer")
)

// TimeControl is a base time per side plus a per-move increment. A zero
// TimeControl means an untimed game.
type TimeControl struct {
	Base      time.Duration
	Increment time.Duration
}

func (tc TimeControl) timed() bool { return tc.Base > 0 || tc.Increment > 0 }

// Result of a game.
type Result uint8

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	DrawnGame
)

type WinReason uint8

const (
	WinNone WinReason = iota
	WinCheckmate
	WinResignation
	WinTimeout
)

type DrawReason uint8

const (
	DrawNone DrawReason = iota
	DrawStalemate
	DrawFiftyMoves
	DrawRepetition
	DrawAgreement
)

// TimedMove is one played move together with its record and timestamp.
type TimedMove struct {
	Move   hexmg.Move
	Record MoveRecord
	At     time.Time
}

// Game drives one hexagonal chess game: board, clocks, move history, draw
// offers and the final result. Methods that depend on the clock take the
// current time explicitly so callers and tests control it. All methods are
// safe for concurrent use.
type Game struct {
	mu sync.Mutex

	board   *hexmg.Board
	control TimeControl

	remaining [2]time.Duration
	lastStamp time.Time
	clockLive bool

	moves   []TimedMove
	history []uint64

	drawOffer [2]bool

	result     Result
	winReason  WinReason
	drawReason DrawReason
}

// New starts a game from the initial position.
func New(tc TimeControl) *Game {
	return NewFromBoard(hexmg.NewBoard(), tc)
}

// NewFromBoard starts a game from an arbitrary position, for resuming
// adjourned games. The board is copied.
func NewFromBoard(b *hexmg.Board, tc TimeControl) *Game {
	g := &Game{
		board:     b.Copy(),
		control:   tc,
		remaining: [2]time.Duration{tc.Base, tc.Base},
	}
	// Seed the repetition history with the starting position.
	g.history = append(g.history, g.board.Hash())
	return g
}

// Board returns a copy of the current position.
func (g *Game) Board() *hexmg.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// Result returns the game outcome so far.
func (g *Game) Result() (Result, WinReason, DrawReason) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result, g.winReason, g.drawReason
}

// Moves returns the move history in play order.
func (g *Game) Moves() []TimedMove {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]TimedMove(nil), g.moves...)
}

// TimeRemaining is the clock of the given side at the given instant. The
// running side's elapsed share of the current move is already deducted.
func (g *Game) TimeRemaining(c hexmg.Color, now time.Time) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	rem := g.remaining[c]
	if g.result == Ongoing && g.clockLive && g.board.SideToMove() == c {
		rem -= now.Sub(g.lastStamp)
	}
	if rem < 0 {
		rem = 0
	}
	return rem
}

// PlayMove plays a move for the side to move at the given instant. The clock
// of the mover is charged for the thinking time since the previous move; a
// move arriving after the flag fell loses on time instead of being played.
func (g *Game) PlayMove(now time.Time, from, to hexmg.Pos, promo hexmg.PieceType) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != Ongoing {
		return ErrGameOver
	}

	mover := g.board.SideToMove()
	if g.control.timed() && g.clockLive {
		g.remaining[mover] -= now.Sub(g.lastStamp)
		if g.remaining[mover] <= 0 {
			g.remaining[mover] = 0
			g.winOnTime(mover.Other())
			return ErrOutOfTime
		}
	}

	m, err := g.board.ApplyMove(from, to, promo)
	if err != nil {
		return err
	}

	if g.control.timed() {
		g.remaining[mover] += g.control.Increment
		g.clockLive = true
	}
	g.lastStamp = now

	g.moves = append(g.moves, TimedMove{Move: m, Record: EncodeMove(m), At: now})
	g.history = append(g.history, g.board.Hash())

	// Any move made cancels pending draw offers.
	g.drawOffer[0] = false
	g.drawOffer[1] = false

	g.updateResult()
	return nil
}

// Flag checks whether the side to move has run out of time and, if so, ends
// the game. Reports whether the game is over after the check.
func (g *Game) Flag(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != Ongoing {
		return true
	}
	if !g.control.timed() || !g.clockLive {
		return false
	}
	mover := g.board.SideToMove()
	if g.remaining[mover]-now.Sub(g.lastStamp) <= 0 {
		g.remaining[mover] = 0
		g.winOnTime(mover.Other())
		return true
	}
	return false
}

// Resign ends the game in favor of the resigner's opponent.
func (g *Game) Resign(c hexmg.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != Ongoing {
		return ErrGameOver
	}
	if c == hexmg.White {
		g.result = BlackWins
	} else {
		g.result = WhiteWins
	}
	g.winReason = WinResignation
	return nil
}

// OfferDraw registers a draw offer by the given side. The offer stands until
// the opponent accepts it or either side moves.
func (g *Game) OfferDraw(c hexmg.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != Ongoing {
		return ErrGameOver
	}
	g.drawOffer[c] = true
	return nil
}

// AcceptDraw ends the game in a draw by agreement, provided the opponent has
// a standing offer.
func (g *Game) AcceptDraw(c hexmg.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result != Ongoing {
		return ErrGameOver
	}
	if !g.drawOffer[c.Other()] {
		return ErrNoDrawOffer
	}
	g.result = DrawnGame
	g.drawReason = DrawAgreement
	return nil
}

func (g *Game) winOnTime(winner hexmg.Color) {
	if winner == hexmg.White {
		g.result = WhiteWins
	} else {
		g.result = BlackWins
	}
	g.winReason = WinTimeout
}

func (g *Game) updateResult() {
	switch {
	case g.board.InCheckmate():
		if g.board.SideToMove() == hexmg.White {
			g.result = BlackWins
		} else {
			g.result = WhiteWins
		}
		g.winReason = WinCheckmate
	case g.board.InStalemate():
		g.result = DrawnGame
		g.drawReason = DrawStalemate
	case g.board.IsDrawBy50():
		g.result = DrawnGame
		g.drawReason = DrawFiftyMoves
	case g.board.IsDrawByRepetition(g.history):
		g.result = DrawnGame
		g.drawReason = DrawRepetition
	}
}

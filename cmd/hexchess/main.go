package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexchess-engine/engine"
	"hexchess-engine/game"
	"hexchess-engine/hexmg"
)

var promoLetters = map[string]hexmg.PieceType{
	"q": hexmg.PieceTypeQueen,
	"r": hexmg.PieceTypeRook,
	"b": hexmg.PieceTypeBishop,
	"n": hexmg.PieceTypeKnight,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	g := game.New(game.TimeControl{})
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("hexchess ready. Commands: new, move x1 y1 x2 y2 [qrbn], go [depth n], show, eval, perft n, quit")

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "new":
			g = game.New(game.TimeControl{})
			engine.ResetForNewGame()
			fmt.Println("new game")
		case "show", "board":
			fmt.Print(g.Board())
		case "eval":
			fmt.Println("eval", engine.Evaluation(g.Board()))
		case "move":
			doMove(g, fields[1:])
		case "go":
			doSearch(g, fields[1:])
		case "perft":
			doPerft(g, fields[1:])
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func doMove(g *game.Game, args []string) {
	if len(args) < 4 {
		fmt.Println("usage: move x1 y1 x2 y2 [qrbn]")
		return
	}
	coords := make([]int8, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			fmt.Println("bad coordinate:", args[i])
			return
		}
		coords[i] = int8(v)
	}
	promo := hexmg.PieceTypeNone
	if len(args) > 4 {
		promo = promoLetters[args[4]]
	}

	from := hexmg.Pos{X: coords[0], Y: coords[1]}
	to := hexmg.Pos{X: coords[2], Y: coords[3]}
	if err := g.PlayMove(time.Now(), from, to, promo); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g.Board())
	reportResult(g)
}

func doSearch(g *game.Game, args []string) {
	cfg := engine.Config{GameTime: 10000}
	for i := 0; i+1 < len(args); i += 2 {
		v, err := strconv.Atoi(args[i+1])
		if err != nil {
			fmt.Println("bad value:", args[i+1])
			return
		}
		switch args[i] {
		case "depth":
			cfg.Depth = v
		case "time":
			cfg.GameTime = v
		case "inc":
			cfg.Increment = v
		}
	}

	board := g.Board()
	res, err := engine.BestMove(board, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	from, _ := hexmg.PosOf(res.Move.From())
	to, _ := hexmg.PosOf(res.Move.To())
	fmt.Println("bestmove", res.Move, "score", res.Score, "depth", res.Depth)

	if err := g.PlayMove(time.Now(), from, to, res.Move.PromotionPieceType()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g.Board())
	reportResult(g)
}

func doPerft(g *game.Game, args []string) {
	depth := 3
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			depth = v
		}
	}
	start := time.Now()
	nodes, err := hexmg.ParallelPerft(context.Background(), g.Board(), depth)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("perft(%d) = %d (%v)\n", depth, nodes, time.Since(start))
}

func reportResult(g *game.Game) {
	res, win, draw := g.Result()
	switch res {
	case game.WhiteWins:
		fmt.Println("game over: white wins", winReasonString(win))
	case game.BlackWins:
		fmt.Println("game over: black wins", winReasonString(win))
	case game.DrawnGame:
		fmt.Println("game over: draw", drawReasonString(draw))
	}
}

func winReasonString(w game.WinReason) string {
	switch w {
	case game.WinCheckmate:
		return "by checkmate"
	case game.WinResignation:
		return "by resignation"
	case game.WinTimeout:
		return "on time"
	}
	return ""
}

func drawReasonString(d game.DrawReason) string {
	switch d {
	case game.DrawStalemate:
		return "by stalemate"
	case game.DrawFiftyMoves:
		return "by the fifty-move rule"
	case game.DrawRepetition:
		return "by repetition"
	case game.DrawAgreement:
		return "by agreement"
	}
	return ""
}

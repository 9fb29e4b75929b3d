package hexmg

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GeneratePseudoMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(b, depth-1)
		}
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts, for debugging movegen
// discrepancies against a reference count.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	for _, m := range b.GeneratePseudoMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		out[m] = Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return out
}

// ParallelPerft splits the count across root moves, one goroutine per root
// move, each on its own copy of the board. Results match Perft exactly.
func ParallelPerft(ctx context.Context, b *Board, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	moves := b.GenerateMoves()
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := b.Copy()
			ok, _ := child.MakeMove(m)
			if !ok {
				panic("hexmg: legal root move rejected")
			}
			counts[i] = Perft(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

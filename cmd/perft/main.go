package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"hexchess-engine/hexmg"
)

func main() {
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move counts")
	sequential := flag.Bool("sequential", false, "disable the root-move split")
	flag.Parse()

	b := hexmg.NewBoard()

	start := time.Now()
	if *divide {
		var total uint64
		for m, n := range hexmg.PerftDivide(b, *depth) {
			fmt.Printf("%v: %d\n", m, n)
			total += n
		}
		fmt.Printf("total: %d (%v)\n", total, time.Since(start))
		return
	}

	var nodes uint64
	var err error
	if *sequential {
		nodes = hexmg.Perft(b, *depth)
	} else {
		nodes, err = hexmg.ParallelPerft(context.Background(), b, *depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v (%.0f nodes/s)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

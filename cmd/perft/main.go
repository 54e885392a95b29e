// Command perft exercises the move generator by exhaustively counting
// leaf nodes from a position to a fixed depth.
//
// Usage:
//
//	perft <depth> [fen]
//
// fen defaults to the standard starting position if omitted.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Oliverans/gooseknight/board"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: perft <depth> [fen]")
		os.Exit(2)
	}

	depth, err := strconv.Atoi(os.Args[1])
	if err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", os.Args[1], err)
		os.Exit(2)
	}

	fen := board.StartFEN
	if len(os.Args) > 2 {
		fen = os.Args[2]
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	nodes := board.Perft(pos, depth)
	elapsed := time.Since(start)

	fmt.Printf("Perft(%d) = %d\n", depth, nodes)
	fmt.Fprintf(os.Stderr, "%s (%.0f nps)\n", elapsed, float64(nodes)/elapsed.Seconds())
}

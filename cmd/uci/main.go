// Command uci is a minimal UCI (Universal Chess Interface) command loop
// driving the board/eval/search packages. It implements only the
// primitives this engine core actually exercises: uci, isready,
// ucinewgame, position, go, and quit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Oliverans/gooseknight/board"
	"github.com/Oliverans/gooseknight/eval"
	"github.com/Oliverans/gooseknight/remoteeval"
	"github.com/Oliverans/gooseknight/search"
)

func main() {
	evalURL := flag.String("evalurl", "", "if set, score positions via this HTTP endpoint instead of the built-in material evaluator")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	scanner := bufio.NewScanner(os.Stdin)
	pos := board.NewPosition()
	tt := search.NewTranspositionTable(16)

	var ev eval.Evaluator = eval.Material{}
	if *evalURL != "" {
		ev = remoteeval.New(*evalURL, log)
	}
	searcher := search.New(tt, ev)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name gooseknight")
			fmt.Println("id author gooseknight contributors")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos = board.NewPosition()
			tt.Clear()
		case "position":
			pos = handlePosition(tokens[1:])
		case "go":
			handleGo(searcher, pos, tokens[1:])
		case "quit":
			return
		}
	}
}

func handlePosition(tokens []string) *board.Position {
	if len(tokens) == 0 {
		return board.NewPosition()
	}

	var pos *board.Position
	rest := tokens

	switch strings.ToLower(tokens[0]) {
	case "startpos":
		pos = board.NewPosition()
		rest = tokens[1:]
	case "fen":
		movesIdx := len(tokens)
		for i, tok := range tokens[1:] {
			if strings.ToLower(tok) == "moves" {
				movesIdx = i + 1
				break
			}
		}
		fen := strings.Join(tokens[1:movesIdx], " ")
		parsed, err := board.ParseFEN(fen)
		if err != nil {
			fmt.Printf("info string invalid fen: %v\n", err)
			return board.NewPosition()
		}
		pos = parsed
		rest = tokens[movesIdx:]
	default:
		return board.NewPosition()
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return pos
	}

	for _, moveStr := range rest[1:] {
		m, ok := findMove(pos, strings.ToLower(moveStr))
		if !ok {
			fmt.Printf("info string illegal move in position command: %s\n", moveStr)
			break
		}
		pos.MakeMove(m)
	}
	return pos
}

func findMove(pos *board.Position, uci string) (board.Move, bool) {
	for _, m := range board.GenerateLegal(pos) {
		if m.String() == uci {
			return m, true
		}
	}
	return 0, false
}

func handleGo(searcher *search.Search, pos *board.Position, tokens []string) {
	params := search.Params{Depth: 6}
	for i := 0; i < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "depth":
			if i+1 < len(tokens) {
				if d, err := strconv.Atoi(tokens[i+1]); err == nil {
					params.Depth = d
				}
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				if ms, err := strconv.Atoi(tokens[i+1]); err == nil {
					params.TimeLimitMs = int64(ms)
				}
				i++
			}
		}
	}

	result := searcher.SearchRoot(pos, params)
	fmt.Printf("info depth %d score cp %d nodes %d\n", result.Depth, result.Score, searcher.Nodes())
	if result.BestMove == 0 {
		fmt.Println("bestmove (none)")
		return
	}
	fmt.Printf("bestmove %s\n", result.BestMove.String())
}

// Command rokumon is a minimal textual driver over the core engine: it
// is not the interactive front-end spec.md places out of scope, just
// enough of a shell to exercise board.NewGame/ParseMove/Apply and
// engine.Search end to end, the same spirit as the teacher's ~20-line
// cmd/chessplay-uci/main.go wrapping its UCI handler.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rokumon/rokumon/internal/board"
	"github.com/rokumon/rokumon/internal/engine"
)

// Baked-in defaults: CLI flag parsing is an out-of-scope external
// collaborator per spec.md §1, so this shell has no flags at all.
const (
	startLayout  = board.Bricks7
	fightEnabled = true
	surpriseOn   = false
)

func main() {
	opts := board.DefaultOptions(startLayout)
	opts.EnableFight = fightEnabled
	opts.EnableSurprise = surpriseOn

	g, err := board.NewGame(opts, board.DefaultClock)
	if err != nil {
		log.Fatalf("rokumon: could not start game: %v", err)
	}

	eng := engine.NewEngine(4)
	eng.SetDifficulty(engine.Medium)

	fmt.Println(board.Render(g))
	fmt.Println("commands: place/move/fight/surprise/submit, 'search', 'moves', 'quit'")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if g.Result() != board.InProgress {
			fmt.Printf("game over: %s\n", g.Result())
			return
		}
		fmt.Printf("%s> ", g.SideToMove())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			return
		case "moves":
			printMoves(g)
			continue
		case "search":
			runSearch(g, eng)
			continue
		}

		m, err := board.ParseMove(line, g)
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}
		if err := g.Apply(m); err != nil {
			fmt.Printf("invalid move: %v\n", err)
			continue
		}
		fmt.Println(board.Render(g))
	}
}

func printMoves(g *board.Game) {
	list := board.LegalMoves(g)
	for i := 0; i < list.Len(); i++ {
		text, err := board.FormatMove(g, list.Get(i))
		if err != nil {
			text = list.Get(i).String()
		}
		fmt.Printf("  %2d: %s\n", i+1, text)
	}
}

func runSearch(g *board.Game, eng *engine.Engine) {
	res := eng.SearchWithLimits(g, engine.SearchLimits{Depth: 8, MoveTime: 0})
	text, err := board.FormatMove(g, res.Move)
	if err != nil {
		text = res.Move.String()
	}
	fmt.Printf("suggestion: %s  score=%s  depth=%d  nodes=%d  completed=%v\n",
		text, engine.ScoreToString(res.Score), res.Depth, res.Nodes, res.Completed)
}

package board

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clinaresl/table"
)

// Render draws a human-readable table of the current position: one row
// per printed board row, each cell showing its label, kind and current
// dice. Grounded on the teacher's PgnBoard.String(), which builds a
// table.Table column by column and formats it with fmt.
func Render(g *Game) string {
	b := g.board
	rows := map[int][]cellSpec{}
	var ys []int
	seen := make(map[Coord]bool)
	addRow := func(coord Coord, kind Kind, label string) {
		if seen[coord] {
			return
		}
		seen[coord] = true
		c := cellSpec{Coord: coord, Label: label, Kind: kind}
		if _, ok := rows[c.Coord.Y]; !ok {
			ys = append(ys, c.Coord.Y)
		}
		rows[c.Coord.Y] = append(rows[c.Coord.Y], c)
	}
	// Original layout cells first, so a Surprise-vacated cell still
	// prints in its home row as "gone" rather than disappearing.
	for _, c := range b.geo.cells {
		addRow(c.Coord, c.Kind, c.Label)
	}
	// Then any buffer cell a Surprise has relocated a card onto.
	for _, coord := range b.ActiveCells() {
		if seen[coord] {
			continue
		}
		card, _ := b.CardAt(coord)
		label, ok := b.Label(coord)
		if !ok {
			label = coordLiteral(coord)
		}
		addRow(coord, card.Kind, label)
	}
	ys = sortInts(ys)

	maxCols := 0
	for _, r := range rows {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}
	spec := "|" + strings.Repeat("c", maxCols) + "|"
	tab, err := table.NewTable(spec)
	if err != nil {
		return fmt.Sprintf("board: render error: %v", err)
	}
	tab.AddDoubleRule()
	for _, y := range ys {
		row := rows[y]
		line := make([]any, maxCols)
		for i := range line {
			line[i] = ""
		}
		for i, c := range row {
			line[i] = renderCell(b, c)
		}
		tab.AddRow(line...)
	}
	tab.AddDoubleRule()

	var out strings.Builder
	fmt.Fprintf(&out, "%v\n", tab)
	fmt.Fprintf(&out, "player 1 reserve: %v\n", g.reserves[Player1].Dice())
	fmt.Fprintf(&out, "player 2 reserve: %v\n", g.reserves[Player2].Dice())
	fmt.Fprintf(&out, "to move: %s  result: %s\n", g.side, g.result)
	return out.String()
}

func renderCell(b *Board, c cellSpec) string {
	if !b.IsActive(c.Coord) {
		return c.Label + ":gone"
	}
	card, _ := b.CardAt(c.Coord)
	var dice []string
	for i := 0; i < maxStack; i++ {
		if s, ok := card.at(i); ok {
			dice = append(dice, fmt.Sprintf("%s/%s", s.Die, s.Owner))
		}
	}
	return fmt.Sprintf("%s:%s:%s", c.Label, card.Kind, strings.Join(dice, ","))
}

func sortInts(xs []int) []int {
	out := append([]int(nil), xs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// wireCard and wirePosition are the JSON-compatible machine
// serialization the external UI consumes: a grid tag, coord/card
// pairs, both reserves, whose turn it is and move history.
type wireCard struct {
	Coord string `json:"coord"`
	Kind  string `json:"kind"`
	Dice  []wireDie `json:"dice"`
}

type wireDie struct {
	Die   string `json:"die"`
	Owner string `json:"owner"`
}

type wirePosition struct {
	Layout   string     `json:"layout"`
	Cards    []wireCard `json:"cards"`
	Player1  []string   `json:"player1_reserve"`
	Player2  []string   `json:"player2_reserve"`
	ToMove   string     `json:"to_move"`
	Result   string     `json:"result"`
	History  []string   `json:"history"`
}

// MarshalJSON serializes g to the wire position shape. History entries
// are rendered with FormatMove against the position each was applied
// from, so it replays the game forward from a newly constructed Game
// with the same Options.
func MarshalJSON(g *Game) ([]byte, error) {
	wp := wirePosition{
		Layout: g.rules.Layout.String(),
		ToMove: g.side.String(),
		Result: g.result.String(),
	}
	for _, coord := range g.board.ActiveCells() {
		card, _ := g.board.CardAt(coord)
		label, ok := g.board.Label(coord)
		if !ok {
			label = coordLiteral(coord)
		}
		wc := wireCard{Coord: label, Kind: card.Kind.String()}
		for i := 0; i < maxStack; i++ {
			if s, ok := card.at(i); ok {
				wc.Dice = append(wc.Dice, wireDie{Die: s.Die.String(), Owner: s.Owner.String()})
			}
		}
		wp.Cards = append(wp.Cards, wc)
	}
	for _, d := range g.reserves[Player1].Dice() {
		wp.Player1 = append(wp.Player1, d.String())
	}
	for _, d := range g.reserves[Player2].Dice() {
		wp.Player2 = append(wp.Player2, d.String())
	}

	replay, err := NewGame(g.rules, DefaultClock)
	if err == nil {
		for _, m := range g.History() {
			if text, err := FormatMove(replay, m); err == nil {
				wp.History = append(wp.History, text)
			}
			_ = replay.Apply(m)
		}
	}

	return json.Marshal(wp)
}

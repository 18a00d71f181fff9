package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDie parses a die literal: a color letter followed by a value
// 1-6, e.g. "r2", "b5", "w1" (case-insensitive).
func ParseDie(s string) (Die, error) {
	if len(s) < 2 {
		return Die{}, parseErr(fmt.Sprintf("die literal %q too short", s))
	}
	color, ok := colorFromByte(s[0])
	if !ok {
		return Die{}, parseErr(fmt.Sprintf("die literal %q has unknown color", s))
	}
	v, err := strconv.Atoi(s[1:])
	if err != nil || v < 1 || v > 6 {
		return Die{}, parseErr(fmt.Sprintf("die literal %q has invalid value", s))
	}
	return Die{Color: color, Value: v}, nil
}

// ParseCoord parses a coordinate literal, either a board label (rNcM)
// or a cube triple (<x,y,z>), against g's current layout.
func ParseCoord(s string, g *Game) (Coord, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		parts := strings.Split(s[1:len(s)-1], ",")
		if len(parts) != 3 {
			return Coord{}, parseErr(fmt.Sprintf("cube literal %q needs three components", s))
		}
		var xyz [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Coord{}, parseErr(fmt.Sprintf("cube literal %q has non-integer component", s))
			}
			xyz[i] = v
		}
		if xyz[0]+xyz[1]+xyz[2] != 0 {
			return Coord{}, parseErr(fmt.Sprintf("cube literal %q components do not sum to zero", s))
		}
		return Coord{X: xyz[0], Y: xyz[1]}, nil
	}
	c, ok := g.board.Coord(s)
	if !ok {
		return Coord{}, parseErr(fmt.Sprintf("unknown coordinate label %q", s))
	}
	return c, nil
}

// ParseMove parses one of the five textual move grammars against g's
// current state. For "move", the named die must match whatever
// currently tops the source card; this is a parse-time sanity check,
// not a substitute for IsLegal.
func ParseMove(s string, g *Game) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Move{}, parseErr("empty move text")
	}

	switch fields[0] {
	case "place":
		if len(fields) != 4 || fields[2] != "at" {
			return Move{}, parseErr(fmt.Sprintf("malformed place move %q", s))
		}
		d, err := ParseDie(fields[1])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseCoord(fields[3], g)
		if err != nil {
			return Move{}, err
		}
		return NewPlace(d, to), nil

	case "move":
		if len(fields) != 6 || fields[2] != "from" || fields[4] != "to" {
			return Move{}, parseErr(fmt.Sprintf("malformed move move %q", s))
		}
		d, err := ParseDie(fields[1])
		if err != nil {
			return Move{}, err
		}
		from, err := ParseCoord(fields[3], g)
		if err != nil {
			return Move{}, err
		}
		to, err := ParseCoord(fields[5], g)
		if err != nil {
			return Move{}, err
		}
		if card, ok := g.board.CardAt(from); ok {
			if top, _, ok := card.Top(); ok && top != d {
				return Move{}, parseErr(fmt.Sprintf("die %s is not on top at %s", d, fields[3]))
			}
		}
		return NewMove(from, to), nil

	case "fight":
		if len(fields) != 3 || fields[1] != "at" {
			return Move{}, parseErr(fmt.Sprintf("malformed fight move %q", s))
		}
		at, err := ParseCoord(fields[2], g)
		if err != nil {
			return Move{}, err
		}
		return NewFight(at), nil

	case "surprise":
		if len(fields) != 5 || fields[1] != "from" || fields[3] != "to" {
			return Move{}, parseErr(fmt.Sprintf("malformed surprise move %q", s))
		}
		from, err := ParseCoord(fields[2], g)
		if err != nil {
			return Move{}, err
		}
		to, err := ParseCoord(fields[4], g)
		if err != nil {
			return Move{}, err
		}
		return NewSurprise(from, to), nil

	case "submit":
		if len(fields) != 1 {
			return Move{}, parseErr(fmt.Sprintf("malformed submit move %q", s))
		}
		return NewSubmit(), nil

	default:
		return Move{}, parseErr(fmt.Sprintf("unknown move verb %q", fields[0]))
	}
}

// FormatMove renders m in the textual grammar ParseMove accepts. It
// must be called before m is applied to g, since KindMove needs to look
// up the die currently sitting at From.
func FormatMove(g *Game, m Move) (string, error) {
	label := func(c Coord) string {
		if l, ok := g.board.Label(c); ok {
			return l
		}
		return coordLiteral(c)
	}
	switch m.Kind {
	case KindPlace:
		return fmt.Sprintf("place %s at %s", m.Die, label(m.To)), nil
	case KindMove:
		card, ok := g.board.CardAt(m.From)
		if !ok {
			return "", invalidMove(EmptyStack, "no card at source")
		}
		die, _, ok := card.Top()
		if !ok {
			return "", invalidMove(EmptyStack, "source card is empty")
		}
		return fmt.Sprintf("move %s from %s to %s", die, label(m.From), label(m.To)), nil
	case KindFight:
		return fmt.Sprintf("fight at %s", label(m.To)), nil
	case KindSurprise:
		return fmt.Sprintf("surprise from %s to %s", label(m.From), label(m.To)), nil
	case KindSubmit:
		return "submit", nil
	default:
		return "", invalidMove(NoReason, "unknown move kind")
	}
}

package game

import "strings"

// Layout is the result of parsing a maze text encoding: the static grid plus
// the extracted bot start positions and food cells. Bot markers are removed
// first, then food, so the stored grid contains only Wall/Free cells.
type Layout struct {
	Grid        *Grid
	InitialPos  []Position // indexed by bot id
	Food        []Position // row-major order
}

// ParseLayout validates and parses a layout string for the given number of
// bots. Lines are stripped of surrounding whitespace before any checks.
//
// The check is purely structural: every character must be a wall, food, free
// space or a bot-id digit; each bot id 0..numBots-1 must appear exactly once;
// all rows must have equal length. Connectivity is not required.
func ParseLayout(text string, numBots int) (*Layout, error) {
	lines := stripLines(text)
	if len(lines) == 0 {
		return nil, layoutErrorf("empty layout")
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, layoutErrorf("layout must be rectangular, line %d has length %d instead of %d",
				i, len(line), width)
		}
	}

	seen := make(map[int]bool, numBots)
	for _, line := range lines {
		for _, ch := range line {
			switch {
			case ch == CharWall || ch == CharFood || ch == CharFree:
			case ch >= '0' && ch <= '9':
				id := int(ch - '0')
				if id >= numBots {
					return nil, layoutErrorf("char %q is not a legal layout character", ch)
				}
				if seen[id] {
					return nil, layoutErrorf("bot id %d was specified twice", id)
				}
				seen[id] = true
			default:
				return nil, layoutErrorf("char %q is not a legal layout character", ch)
			}
		}
	}
	if len(seen) != numBots {
		missing := make([]string, 0)
		for id := 0; id < numBots; id++ {
			if !seen[id] {
				missing = append(missing, string(rune('0'+id)))
			}
		}
		return nil, layoutErrorf("layout is invalid for %d bots, missing ids: %s",
			numBots, strings.Join(missing, ", "))
	}

	grid := NewGrid(len(lines), width)
	initial := make([]Position, numBots)
	food := make([]Position, 0)

	// Bot markers are extracted first, then food; both become Free cells.
	for r, line := range lines {
		for c, ch := range line {
			pos := P(r, c)
			switch {
			case ch == CharWall:
				grid.Set(pos, Wall) //nolint:errcheck // pos is in bounds by construction
			case ch >= '0' && ch <= '9':
				initial[int(ch-'0')] = pos
			}
		}
	}
	for r, line := range lines {
		for c, ch := range line {
			if ch == CharFood {
				food = append(food, P(r, c))
			}
		}
	}

	return &Layout{Grid: grid, InitialPos: initial, Food: food}, nil
}

// stripLines splits the layout into lines with surrounding whitespace removed
// and drops leading/trailing blank lines.
func stripLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

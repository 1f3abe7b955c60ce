package cubes

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Summary describes a set of parsed games.
type Summary struct {
	Games int
	Draws int
	// Total is the number of cubes of each color shown across all draws.
	Total [numColors]int64
	// Max is the largest count of each color seen in a single draw.
	Max [numColors]int
}

// Summarize counts the games, draws, and cubes in games.
func Summarize(games []Game) Summary {
	var s Summary
	s.Games = len(games)
	for _, g := range games {
		s.Draws += len(g.Draws)
		for _, d := range g.Draws {
			for c, n := range d {
				s.Total[c] += int64(n)
				if n > s.Max[c] {
					s.Max[c] = n
				}
			}
		}
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "games: %s\n", humanize.Comma(int64(s.Games)))
	fmt.Fprintf(&b, "draws: %s\n", humanize.Comma(int64(s.Draws)))
	for _, c := range Colors {
		fmt.Fprintf(&b, "%s: %s total, %s max\n", c, humanize.Comma(s.Total[c]), humanize.Comma(int64(s.Max[c])))
	}
	return b.String()
}

// Package cubes parses records of a game in which colored cubes are drawn
// from a bag over several rounds, and computes aggregates over those records.
package cubes

import "fmt"

// A Color is one of the three cube colors.
type Color uint8

const (
	Red Color = iota
	Green
	Blue

	numColors = 3
)

// Colors lists every Color in declaration order.
var Colors = [numColors]Color{Red, Green, Blue}

var colorNames = [numColors]string{"red", "green", "blue"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor maps one of the literals "red", "green", or "blue" to its
// Color. Matching is case-sensitive.
func ParseColor(s string) (Color, bool) {
	for i, name := range colorNames {
		if s == name {
			return Color(i), true
		}
	}
	return 0, false
}

// A Draw is one round of cubes shown from the bag.
// A color that is absent from the map was not drawn.
type Draw map[Color]int

// Count returns the number of cubes of color c in d.
func (d Draw) Count(c Color) int { return d[c] }

// A Game is a numbered sequence of draws.
type Game struct {
	ID    int
	Draws []Draw
}

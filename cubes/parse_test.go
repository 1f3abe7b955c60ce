package cubes

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func mustParse(t *testing.T, s string) []Game {
	t.Helper()
	games, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return games
}

func TestParse(t *testing.T) {
	got := mustParse(t, example)
	want := []Game{
		{1, []Draw{{Blue: 3, Red: 4}, {Red: 1, Green: 2, Blue: 6}, {Green: 2}}},
		{2, []Draw{{Blue: 1, Green: 2}, {Green: 3, Blue: 4, Red: 1}, {Green: 1, Blue: 1}}},
		{3, []Draw{{Green: 8, Blue: 6, Red: 20}, {Blue: 5, Red: 4, Green: 13}, {Green: 5, Red: 1}}},
		{4, []Draw{{Green: 1, Red: 3, Blue: 6}, {Green: 3, Red: 6}, {Green: 3, Blue: 15, Red: 14}}},
		{5, []Draw{{Red: 6, Blue: 1, Green: 3}, {Blue: 2, Red: 1, Green: 2}}},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Parse: got != want:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParseOrder(t *testing.T) {
	games := mustParse(t, "Game 9: 1 red\n\nGame 3: 2 blue; 5 green\nGame 7:\n")
	var ids []int
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	if diff := pretty.Diff(ids, []int{9, 3, 7}); len(diff) > 0 {
		t.Errorf("ids: %s", strings.Join(diff, "\n"))
	}
	if got, want := games[1].Draws[1].Count(Green), 5; got != want {
		t.Errorf("second draw green: got %d; want %d", got, want)
	}
	if got, want := games[1].Draws[1].Count(Red), 0; got != want {
		t.Errorf("second draw red: got %d; want %d", got, want)
	}
	if got := len(games[2].Draws); got != 0 {
		t.Errorf("game 7: got %d draws; want 0", got)
	}
}

func TestParseGameErrors(t *testing.T) {
	for _, tt := range []struct {
		line string
		want error
	}{
		{"", ErrMalformedLine},
		{"Game 1 3 red", ErrMalformedLine},
		{"Gaem 1: 3 red", ErrMalformedLine},
		{"Game x: 3 red", ErrMalformedLine},
		{"Game 0: 3 red", ErrMalformedLine},
		{"Game -2: 3 red", ErrMalformedLine},
		{"Game 1: 3 red;; 2 blue", ErrMalformedLine},
		{"Game 1: 3 red, , 2 blue", ErrMalformedLine},
		{"Game 1: 3", ErrMalformedLine},
		{"Game 1: 3 red blue", ErrMalformedLine},
		{"Game 1: 3 purple", ErrInvalidColor},
		{"Game 1: 3 Red", ErrInvalidColor},
		{"Game 1: 3 red, 4 red", ErrInvalidColor},
		{"Game 1: three red", ErrInvalidCount},
		{"Game 1: -3 red", ErrInvalidCount},
		{"Game 1: 99999999999 red", ErrInvalidCount},
	} {
		_, err := ParseGame(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseGame(%q): got error %v; want %v", tt.line, err, tt.want)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseGame(%q): error %T is not a *ParseError", tt.line, err)
		} else if perr.Text != tt.line {
			t.Errorf("ParseGame(%q): ParseError.Text = %q", tt.line, perr.Text)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	for _, tt := range []struct {
		input string
		line  int
		want  error
	}{
		{"Game 1: 1 red\nGame 2: 1 yellow\nGame 3: 1 blue\n", 2, ErrInvalidColor},
		{"Game 1: 1 red\n\nGame 2: x blue\n", 3, ErrInvalidCount},
		{"Game 1: 1 red\nGame 1: 2 red\n", 2, ErrMalformedLine},
	} {
		games, err := Parse(strings.NewReader(tt.input))
		if games != nil {
			t.Errorf("Parse(%q): got %d games with error; want none", tt.input, len(games))
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): got error %v; want *ParseError", tt.input, err)
			continue
		}
		if perr.Line != tt.line {
			t.Errorf("Parse(%q): error on line %d; want %d", tt.input, perr.Line, tt.line)
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q): got %v; want %v", tt.input, err, tt.want)
		}
	}
}

func TestParseLongLine(t *testing.T) {
	input := "Game 1: 1 red\nGame 2: " + strings.Repeat("1 red", 70000) + "\n"
	games, err := Parse(strings.NewReader(input))
	if games != nil {
		t.Errorf("got %d games with error; want none", len(games))
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v; want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("error on line %d; want 2", perr.Line)
	}
	if !errors.Is(err, ErrMalformedLine) {
		t.Errorf("got %v; want %v", err, ErrMalformedLine)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q): got (%v, %t); want (%v, true)", c.String(), got, ok, c)
		}
	}
	if _, ok := ParseColor("RED"); ok {
		t.Error("ParseColor(\"RED\") succeeded")
	}
}

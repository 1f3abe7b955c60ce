package cubes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedLine = errors.New("malformed game line")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidCount  = errors.New("invalid count")
)

// A ParseError describes a line that could not be parsed.
// Err wraps one of ErrMalformedLine, ErrInvalidColor, or ErrInvalidCount.
type ParseError struct {
	Line int // 1-based; 0 if the line number is unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one game per line from r. Blank lines are skipped.
// Parsing stops at the first bad line, and in that case no games are returned.
// Errors about the input's contents, including a line that is too long to
// scan, are *ParseErrors; errors reading from r are returned as is.
func Parse(r io.Reader) ([]Game, error) {
	var games []Game
	seen := make(map[int]int) // game ID -> line number
	scanner := bufio.NewScanner(r)
	lineno := 1
	for ; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			perr := err.(*ParseError)
			perr.Line = lineno
			return nil, perr
		}
		if prev, ok := seen[g.ID]; ok {
			return nil, &ParseError{
				Line: lineno,
				Text: line,
				Err:  fmt.Errorf("%w: game %d already appeared on line %d", ErrMalformedLine, g.ID, prev),
			}
		}
		seen[g.ID] = lineno
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{
				Line: lineno,
				Err:  fmt.Errorf("%w: %s", ErrMalformedLine, err),
			}
		}
		return nil, err
	}
	return games, nil
}

// ParseGame parses a single line of the form
//
//	Game <id>: <count> <color>, ...; <count> <color>, ...
//
// Any error it returns is a *ParseError.
func ParseGame(line string) (Game, error) {
	g, err := parseGame(line)
	if err != nil {
		return Game{}, &ParseError{Text: line, Err: err}
	}
	return g, nil
}

func parseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':'", ErrMalformedLine)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(header), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing \"Game\" prefix", ErrMalformedLine)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idText), 10, 31)
	if err != nil || id == 0 {
		return Game{}, fmt.Errorf("%w: bad game id %q", ErrMalformedLine, idText)
	}
	g := Game{ID: int(id)}

	body = strings.TrimSpace(body)
	if body == "" {
		return g, nil
	}
	for _, s := range strings.Split(body, ";") {
		d, err := parseDraw(s)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseDraw(s string) (Draw, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty draw", ErrMalformedLine)
	}
	d := make(Draw)
	for _, pair := range strings.Split(s, ",") {
		fields := strings.Fields(pair)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: want \"<count> <color>\", got %q", ErrMalformedLine, strings.TrimSpace(pair))
		}
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCount, fields[0])
		}
		c, ok := ParseColor(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, fields[1])
		}
		if _, dup := d[c]; dup {
			return nil, fmt.Errorf("%w: %s appears twice in one draw", ErrInvalidColor, c)
		}
		d[c] = int(n)
	}
	return d, nil
}
